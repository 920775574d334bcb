package summarize

import (
	"github.com/sumkit/sumkit/internal/backend"
	"github.com/sumkit/sumkit/internal/logger"
)

type implRunner struct {
	backend backend.Backend
	logger  logger.Logger
}

// New creates a Runner that sends chunks to the given backend.
func New(b backend.Backend, log logger.Logger) Runner {
	return &implRunner{
		backend: b,
		logger:  log,
	}
}
