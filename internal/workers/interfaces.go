// Package workers runs the background workers of the panel as one group.
package workers

import "context"

// Worker is a restartable background process. Start launches it and returns
// once it is running; Stop blocks until it has exited.
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}
