package client

import "context"

// Client is a runnable panel application.
type Client interface {
	// Run blocks until the panel exits or ctx is done.
	Run(ctx context.Context) error
}

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
}
