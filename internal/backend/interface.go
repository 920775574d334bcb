package backend

import "context"

// Backend generates a completion for a prompt against one inference API.
type Backend interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
