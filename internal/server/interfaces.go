package server

import "context"

// Server defines the lifecycle contract of the bot process.
type Server interface {
	// RunServer starts every configured component and blocks until ctx is
	// cancelled, a stop signal arrives or a component fails. It returns
	// after in-flight updates have been processed.
	RunServer(ctx context.Context) error
}
