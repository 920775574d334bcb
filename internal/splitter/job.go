package splitter

import (
	"fmt"

	"github.com/sumkit/sumkit/internal/config"
)

// Job is one validated split invocation: exactly one input document
// processed to completion.
type Job struct {
	InputPath  string
	OutputDir  string // empty means derive from the input stem, see DefaultOutputDir
	MaxTokens  int
	SingleShot bool
	Wrap       config.Wrap
}

// Validate checks the job before any file is read or written.
func (j Job) Validate() error {
	if j.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if !j.SingleShot && j.MaxTokens < 1 {
		return fmt.Errorf("max tokens per part must be at least 1, got %d", j.MaxTokens)
	}
	return nil
}
