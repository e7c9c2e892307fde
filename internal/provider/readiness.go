package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNotReady is reported while the readiness probe is still running.
var ErrNotReady = errors.New("provider: not ready")

// Prober checks whether a backend can serve requests.
type Prober interface {
	Probe(ctx context.Context) error
}

// Readiness is a one-shot initialisation handshake. The probe runs once in
// the background; Done is closed when it finishes and Err then reports its
// terminal outcome forever.
type Readiness struct {
	done chan struct{}
	once sync.Once
	err  error
}

// StartReadiness probes p in the background, giving up after timeout.
func StartReadiness(ctx context.Context, p Prober, timeout time.Duration) *Readiness {
	r := &Readiness{done: make(chan struct{})}
	go func() {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		err := p.Probe(ctx)
		if err != nil {
			err = fmt.Errorf("provider: probe failed: %w", err)
			log.Error().Err(err).Msg("provider: backend is not usable")
		} else {
			log.Info().Msg("provider: backend ready")
		}
		r.finish(err)
	}()
	return r
}

func (r *Readiness) finish(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}

// Done is closed once the probe has finished.
func (r *Readiness) Done() <-chan struct{} {
	return r.done
}

// Err returns ErrNotReady until Done is closed, then the probe's error.
func (r *Readiness) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return ErrNotReady
	}
}

// Wait blocks until the probe finishes or ctx is done.
func (r *Readiness) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
