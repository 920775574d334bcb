package watcher

import "context"

// EventHandler processes one newly arrived file.
type EventHandler func(ctx context.Context, path string) error

// Watcher monitors a directory and dispatches new files to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}
