package backend

import (
	"fmt"

	"github.com/sumkit/sumkit/internal/logger"
)

// Options selects and configures one inference backend.
type Options struct {
	Kind    string // "ollama", "kobold" or "gemini"
	URL     string // override for the API endpoint, optional
	Model   string // model name where the backend takes one, optional
	Params  map[string]any
	APIKeys []string // gemini only
}

// New creates the configured Backend.
func New(opts Options, log logger.Logger) (Backend, error) {
	switch opts.Kind {
	case "ollama":
		return NewOllama(opts.URL, opts.Model, opts.Params), nil
	case "kobold":
		return NewKobold(opts.URL, opts.Params), nil
	case "gemini":
		return NewGemini(opts.APIKeys, opts.Model, log)
	default:
		return nil, fmt.Errorf("unknown backend %q (expected ollama, kobold or gemini)", opts.Kind)
	}
}
