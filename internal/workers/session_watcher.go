package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

// DefaultSessionCheckInterval is used when the configured interval is not
// positive.
const DefaultSessionCheckInterval = 5 * time.Minute

var _ Worker = (*SessionWatcher)(nil)

// SessionWatcher periodically revalidates the session so that a token
// revoked on the server is noticed without waiting for the next request.
type SessionWatcher struct {
	session  Revalidator
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionWatcher creates a watcher that is idle until Start is called.
func NewSessionWatcher(session Revalidator, interval time.Duration, logger *logger.Logger) *SessionWatcher {
	if interval <= 0 {
		interval = DefaultSessionCheckInterval
	}
	return &SessionWatcher{session: session, interval: interval, logger: logger}
}

// Interval returns the effective check interval.
func (w *SessionWatcher) Interval() time.Duration {
	return w.interval
}

// Run implements [Worker]. It performs a single revalidation; failures are
// logged and do not stop the watcher.
func (w *SessionWatcher) Run(ctx context.Context) {
	if err := w.session.Revalidate(ctx); err != nil {
		w.logger.Warn().Err(err).Str("func", "SessionWatcher.Run").Msg("session revalidation failed")
	}
}

// Start stops any previously running loop, then launches a goroutine that
// calls Run every interval until ctx is cancelled or Stop is called.
func (w *SessionWatcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				w.Run(loopCtx)
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has exited. Safe to call when
// the watcher is not running.
func (w *SessionWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
