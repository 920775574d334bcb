// Package splitter partitions a transcript into token-bounded parts, each
// wrapped with a configured header and footer, and writes one file per part.
package splitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sumkit/sumkit/internal/config"
	"github.com/sumkit/sumkit/internal/logger"
)

// Part is one planned output artifact.
type Part struct {
	Index int    // 1-based
	Name  string // file name inside the output directory
	Text  string // exact bytes to write
}

// Plan is the pure planning step: it maps the input content and a validated
// job to the ordered list of parts to write, touching no files.
//
// In split mode the content is filtered, flattened and tokenized on
// whitespace runs; part i holds tokens [i*M, min((i+1)*M, N)) rejoined with
// single spaces, so the parts partition the token sequence exactly. An input
// with no tokens plans zero parts. In single-shot mode the untouched content
// becomes one part.
func Plan(content string, job Job) []Part {
	if job.SingleShot {
		return []Part{{
			Index: 1,
			Name:  singleShotName(job.InputPath),
			Text:  wrapText(content, job.Wrap),
		}}
	}

	flat := Flatten(FilterLines(strings.Split(content, "\n")))
	tokens := strings.Fields(flat)
	if len(tokens) == 0 {
		return nil
	}

	numParts := (len(tokens) + job.MaxTokens - 1) / job.MaxTokens
	parts := make([]Part, 0, numParts)
	for i := 0; i < numParts; i++ {
		start := i * job.MaxTokens
		end := min(start+job.MaxTokens, len(tokens))
		parts = append(parts, Part{
			Index: i + 1,
			Name:  partName(job.InputPath, i+1),
			Text:  wrapText(strings.Join(tokens[start:end], " "), job.Wrap),
		})
	}
	return parts
}

// Run executes a split job: read, plan, create the output directory, write
// every part. Any failure aborts the run. Reruns against the same output
// directory overwrite prior parts, so identical inputs give identical
// outputs.
func Run(ctx context.Context, job Job, log logger.Logger) error {
	if err := job.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(job.InputPath)
	if err != nil {
		return fmt.Errorf("read input %s: %w", job.InputPath, err)
	}

	outDir := job.OutputDir
	if outDir == "" {
		if outDir, err = DefaultOutputDir(job.InputPath); err != nil {
			return err
		}
	}

	parts := Plan(string(data), job)
	if len(parts) == 0 {
		log.Warn(ctx, "No tokens left after filtering %s, nothing to write", job.InputPath)
		return nil
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	for _, part := range parts {
		outPath := filepath.Join(outDir, part.Name)
		if err := os.WriteFile(outPath, []byte(part.Text), 0644); err != nil {
			return fmt.Errorf("write part %s: %w", outPath, err)
		}
		log.Debug(ctx, "Wrote part %d: %s", part.Index, outPath)
	}

	log.Info(ctx, "Wrote %d part(s) to %s", len(parts), outDir)
	return nil
}

// DefaultOutputDir derives the output directory from the input stem as
// "{stem}_splits" under the current working directory.
func DefaultOutputDir(inputPath string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	stem, _ := splitExt(inputPath)
	return filepath.Join(cwd, stem+"_splits"), nil
}

func wrapText(text string, w config.Wrap) string {
	return w.Header + text + w.Footer + "\n\n"
}

func partName(inputPath string, index int) string {
	stem, ext := splitExt(inputPath)
	return fmt.Sprintf("%s_part_%03d%s", stem, index, ext)
}

func singleShotName(inputPath string) string {
	stem, ext := splitExt(inputPath)
	return stem + "_single_shot" + ext
}

// splitExt splits a path's base name into stem and extension (the extension
// keeps its leading dot).
func splitExt(path string) (string, string) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext), ext
}
