// Package workers provides background workers of the client.
// It defines the Worker interface and the SessionWatcher that periodically
// checks the signed-in session against the server.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run performs one unit of work and returns; scheduling is left to the
// caller.
type Worker interface {
	Run(ctx context.Context)
}

// Revalidator re-checks the current session with the server.
// *session.Store satisfies it.
type Revalidator interface {
	Revalidate(ctx context.Context) error
}
