package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sumkit/sumkit/internal/watcher"
)

// RunDir summarizes every chunk file in dir through the backend. A failing
// chunk is logged and skipped; the run continues and the collected results
// are written at the end.
func (r *implRunner) RunDir(ctx context.Context, dir, outputPath string) error {
	files, err := discoverTextFiles(dir)
	if err != nil {
		return fmt.Errorf("discover text files: %w", err)
	}

	if len(files) == 0 {
		r.logger.Info(ctx, "No .txt files found in %s", dir)
	} else {
		r.logger.Info(ctx, "Found %d file(s) to summarize via %s", len(files), r.backend.Name())
	}

	results := make(map[string]string)
	successCount := 0
	failCount := 0

	for i, path := range files {
		name := filepath.Base(path)
		r.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(files), name)

		summary, err := r.summarizeFile(ctx, path)
		if err != nil {
			r.logger.Error(ctx, "Failed to summarize %s: %v", name, err)
			failCount++
			continue
		}

		results[name] = summary
		successCount++
	}

	if err := writeResults(outputPath, results); err != nil {
		return err
	}

	r.logger.Info(ctx, "Summarization complete: %d success, %d failed, results in %s",
		successCount, failCount, outputPath)
	return nil
}

// Watch processes what is already in dir, then keeps folding summaries of
// newly arriving chunk files into the results file until the context is
// cancelled.
func (r *implRunner) Watch(ctx context.Context, dir, outputPath string) error {
	if err := r.RunDir(ctx, dir, outputPath); err != nil {
		return err
	}

	handler := func(ctx context.Context, path string) error {
		name := filepath.Base(path)
		summary, err := r.summarizeFile(ctx, path)
		if err != nil {
			return fmt.Errorf("summarize %s: %w", name, err)
		}

		results, err := loadResults(outputPath)
		if err != nil {
			return err
		}
		results[name] = summary
		if err := writeResults(outputPath, results); err != nil {
			return err
		}

		r.logger.Info(ctx, "[DONE] %s", name)
		return nil
	}

	w, err := watcher.New(dir, []string{".txt"}, handler, r.logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	return w.Start(ctx)
}

func (r *implRunner) summarizeFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read chunk %s: %w", path, err)
	}
	return r.backend.Generate(ctx, string(data))
}

// discoverTextFiles lists the .txt files of dir in sorted order, skipping
// subdirectories and dotfiles.
func discoverTextFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".txt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

func loadResults(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read results %s: %w", path, err)
	}

	var results map[string]string
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse results %s: %w", path, err)
	}
	return results, nil
}

func writeResults(path string, results map[string]string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write results %s: %w", path, err)
	}
	return nil
}
