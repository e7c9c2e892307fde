package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"sensitive-places-api/internal/models"
)

// Searcher runs a single nearby search.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) (*models.NearbySearch, error)
}

// Session serialises the searches of one client with a last-request-wins
// policy: starting a search cancels the one in flight, and a search that
// completes after a newer one started is discarded with ErrSearchSuperseded.
type Session struct {
	searcher Searcher
	seq      atomic.Uint64

	mu        sync.Mutex
	cancel    context.CancelFunc
	latest    *models.NearbySearch
	latestSeq uint64
}

// NewSession creates a session on top of searcher.
func NewSession(searcher Searcher) *Session {
	return &Session{searcher: searcher}
}

// Search starts a new search, superseding any search still running.
func (s *Session) Search(ctx context.Context, req SearchRequest) (*models.NearbySearch, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	seq := s.seq.Add(1)
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	result, err := s.searcher.Search(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq.Load() != seq {
		log.Debug().Uint64("seq", seq).Msg("service: discarding superseded search")
		return nil, ErrSearchSuperseded
	}
	s.cancel = nil
	if err != nil {
		return nil, err
	}
	s.latest = result
	s.latestSeq = seq
	return result, nil
}

// Latest returns the most recent successful result and its sequence number.
func (s *Session) Latest() (*models.NearbySearch, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.latestSeq
}
