package handler

import (
	"sync"
	"time"

	"sensitive-places-api/internal/service"
)

// SessionHeader identifies the client whose searches follow the
// last-request-wins policy.
const SessionHeader = "X-Session-ID"

type sessionEntry struct {
	session  *service.Session
	lastUsed time.Time
}

// SessionStore hands out one service.Session per client id and forgets
// sessions idle for longer than ttl.
type SessionStore struct {
	searcher service.Searcher
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewSessionStore creates a store whose sessions run searches on searcher.
func NewSessionStore(searcher service.Searcher, ttl time.Duration) *SessionStore {
	return &SessionStore{
		searcher: searcher,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// Get returns the session for id, creating it on first use.
func (s *SessionStore) Get(id string) *service.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	e, ok := s.sessions[id]
	if !ok {
		e = &sessionEntry{session: service.NewSession(s.searcher)}
		s.sessions[id] = e
	}
	e.lastUsed = now
	return e.session
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) pruneLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, e := range s.sessions {
		if now.Sub(e.lastUsed) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
