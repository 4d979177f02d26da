// Package workers runs the application's background jobs.
//
// A [Worker] runs until its context is cancelled. [Workers] starts every
// configured worker and waits for all of them to return.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
