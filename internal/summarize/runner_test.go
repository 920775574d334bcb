package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sumkit/sumkit/internal/logger"
)

// fakeBackend echoes prompts back and fails on demand.
type fakeBackend struct {
	failOn string
	calls  []string
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, prompt)
	if f.failOn != "" && strings.Contains(prompt, f.failOn) {
		return "", fmt.Errorf("backend unavailable")
	}
	return "summary of " + strings.TrimSpace(prompt), nil
}

func writeChunk(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readResults(t *testing.T, path string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("results file: %v", err)
	}
	var results map[string]string
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("results file is not a JSON map: %v", err)
	}
	return results
}

func TestRunDir(t *testing.T) {
	dir := t.TempDir()
	writeChunk(t, dir, "talk_part_002.txt", "second chunk")
	writeChunk(t, dir, "talk_part_001.txt", "first chunk")
	writeChunk(t, dir, "notes.md", "not a chunk")
	writeChunk(t, dir, ".hidden.txt", "dotfile")
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	fb := &fakeBackend{}
	r := New(fb, logger.New("error"))
	outputPath := filepath.Join(t.TempDir(), "results.json")

	if err := r.RunDir(context.Background(), dir, outputPath); err != nil {
		t.Fatalf("RunDir() error = %v", err)
	}

	// only the .txt chunks, in sorted order
	wantCalls := []string{"first chunk", "second chunk"}
	if !reflect.DeepEqual(fb.calls, wantCalls) {
		t.Errorf("backend calls = %q, want %q", fb.calls, wantCalls)
	}

	want := map[string]string{
		"talk_part_001.txt": "summary of first chunk",
		"talk_part_002.txt": "summary of second chunk",
	}
	if got := readResults(t, outputPath); !reflect.DeepEqual(got, want) {
		t.Errorf("results = %v, want %v", got, want)
	}
}

func TestRunDirSkipsFailedChunks(t *testing.T) {
	dir := t.TempDir()
	writeChunk(t, dir, "a.txt", "good chunk")
	writeChunk(t, dir, "b.txt", "bad chunk")

	fb := &fakeBackend{failOn: "bad"}
	r := New(fb, logger.New("error"))
	outputPath := filepath.Join(t.TempDir(), "results.json")

	if err := r.RunDir(context.Background(), dir, outputPath); err != nil {
		t.Fatalf("RunDir() error = %v", err)
	}

	want := map[string]string{"a.txt": "summary of good chunk"}
	if got := readResults(t, outputPath); !reflect.DeepEqual(got, want) {
		t.Errorf("results = %v, want %v", got, want)
	}
}

func TestRunDirEmptyDirectory(t *testing.T) {
	r := New(&fakeBackend{}, logger.New("error"))
	outputPath := filepath.Join(t.TempDir(), "results.json")

	if err := r.RunDir(context.Background(), t.TempDir(), outputPath); err != nil {
		t.Fatalf("RunDir() error = %v", err)
	}

	if got := readResults(t, outputPath); len(got) != 0 {
		t.Errorf("results = %v, want empty map", got)
	}
}

func TestRunDirMissingDirectory(t *testing.T) {
	r := New(&fakeBackend{}, logger.New("error"))
	err := r.RunDir(context.Background(), filepath.Join(t.TempDir(), "absent"), "out.json")
	if err == nil {
		t.Error("RunDir() should fail for a missing directory")
	}
}

func TestLoadResultsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	// missing file yields an empty map
	results, err := loadResults(path)
	if err != nil {
		t.Fatalf("loadResults() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("loadResults() = %v, want empty map", results)
	}

	results["x.txt"] = "text"
	if err := writeResults(path, results); err != nil {
		t.Fatalf("writeResults() error = %v", err)
	}

	reloaded, err := loadResults(path)
	if err != nil {
		t.Fatalf("loadResults() error = %v", err)
	}
	if !reflect.DeepEqual(reloaded, results) {
		t.Errorf("reloaded = %v, want %v", reloaded, results)
	}
}
