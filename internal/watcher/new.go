package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/sumkit/sumkit/internal/logger"
)

// New creates a Watcher for dir that invokes handler for every new file
// whose extension is in exts (lowercase, with leading dot).
func New(dir string, exts []string, handler EventHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path %s: %w", dir, err)
	}

	extSet := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		extSet[ext] = struct{}{}
	}

	return &implWatcher{
		dir:     dir,
		exts:    extSet,
		handler: handler,
		logger:  log,
		watcher: fsw,
	}, nil
}
