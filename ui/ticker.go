package ui

import (
	"context"
	"sync"
	"time"
)

// Ticker calls a function on a fixed interval from its own goroutine until
// it has run the requested number of times or is stopped. It replaces
// sleeping on the UI goroutine for animations and clock refreshes.
type Ticker struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartTicker calls fn(i) for i = 0, 1, ... every interval. count limits the
// number of calls; zero means until Stop is called or ctx is done. The first
// call happens one interval after the start.
func StartTicker(ctx context.Context, interval time.Duration, count int, fn func(i int)) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()

		tick := time.NewTicker(interval)
		defer tick.Stop()

		for i := 0; count == 0 || i < count; i++ {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
			}
			// A stop that raced with the tick wins
			if ctx.Err() != nil {
				return
			}
			fn(i)
		}
	}()

	return t
}

// Stop cancels the ticker and waits for its goroutine to exit. It is safe
// to call more than once and on a nil Ticker. Stop must not be called from
// inside fn.
func (t *Ticker) Stop() {
	if t == nil {
		return
	}
	t.once.Do(t.cancel)
	<-t.done
}

// Done is closed once the ticker has finished or been stopped.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}
