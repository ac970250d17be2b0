// Package ticker provides a cancellable repeating timer whose callbacks
// never overlap
package ticker

import (
	"context"
	"sync"
	"time"
)

// Ticker calls a function at a fixed period from a single goroutine until
// it is stopped or its context is cancelled. The zero value is ready to use.
type Ticker struct {
	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
}

// Start begins calling fn every period. A ticker that is already running is
// stopped first, so at most one callback chain exists at a time.
func (t *Ticker) Start(ctx context.Context, period time.Duration, fn func()) {
	t.Stop()

	t.mu.Lock()
	defer t.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	t.cancel = cancel
	t.done = done

	go func() {
		defer close(done)

		tk := time.NewTicker(period)
		defer tk.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-tk.C:
				// a stop may race with a pending tick
				if ctx.Err() != nil {
					return
				}

				fn()
			}
		}
	}()
}

// Stop cancels the ticker and waits for its goroutine to exit. It is safe to
// call on a stopped ticker. Stop must not be called from within the
// callback.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Running reports whether the callback chain is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return false
	}

	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Done returns a channel closed when the current callback chain exits, or
// nil when the ticker was never started.
func (t *Ticker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.done
}
