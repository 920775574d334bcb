package merger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sumkit/sumkit/internal/logger"
)

func TestMergeOrdersByPartIndex(t *testing.T) {
	// JSON map order is irrelevant; part indexes decide.
	data := []byte(`{
		"talk_part_010.txt": "tenth",
		"talk_part_002.txt": "second",
		"talk_part_001.txt": "first"
	}`)

	got, err := Merge(data)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	want := "first\nsecond\ntenth"
	if got != want {
		t.Errorf("Merge() = %q, want %q", got, want)
	}
}

func TestMergeLegacyResultsShape(t *testing.T) {
	data := []byte(`{
		"talk_part_001.txt": {"results": [{"text": "alpha"}, {"text": "beta"}]},
		"talk_part_002.txt": "gamma"
	}`)

	got, err := Merge(data)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	want := "alpha\nbeta\ngamma"
	if got != want {
		t.Errorf("Merge() = %q, want %q", got, want)
	}
}

func TestMergeUnindexedKeysFollowLexicographically(t *testing.T) {
	data := []byte(`{
		"zeta.txt": "z",
		"alpha.txt": "a",
		"talk_part_001.txt": "indexed"
	}`)

	got, err := Merge(data)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	want := "indexed\na\nz"
	if got != want {
		t.Errorf("Merge() = %q, want %q", got, want)
	}
}

func TestMergeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json"},
		{"not a map", `["a", "b"]`},
		{"unsupported value shape", `{"x.txt": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Merge([]byte(tt.data)); err == nil {
				t.Error("Merge() should fail")
			}
		})
	}
}

func TestPartIndex(t *testing.T) {
	tests := []struct {
		name        string
		want        int
		wantIndexed bool
	}{
		{"talk_part_003.txt", 3, true},
		{"talk_part_044.txt", 44, true},
		{"other.txt", 0, false},
		{"talk_single_shot.txt", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, indexed := partIndex(tt.name)
			if index != tt.want || indexed != tt.wantIndexed {
				t.Errorf("partIndex(%q) = (%d, %v), want (%d, %v)",
					tt.name, index, indexed, tt.want, tt.wantIndexed)
			}
		})
	}
}

func TestRunWritesTextFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "results.json")
	outputPath := filepath.Join(dir, "merged.txt")

	input := `{"a_part_001.txt": "one", "a_part_002.txt": "two"}`
	if err := os.WriteFile(inputPath, []byte(input), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Run(context.Background(), inputPath, outputPath, FormatText, logger.New("error")); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo" {
		t.Errorf("output = %q, want %q", data, "one\ntwo")
	}
}

func TestRunWritesDocx(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "results.json")
	outputPath := filepath.Join(dir, "merged.docx")

	input := `{"a_part_001.txt": "# Heading\n\nSome **bold** text\n- a bullet"}`
	if err := os.WriteFile(inputPath, []byte(input), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Run(context.Background(), inputPath, outputPath, FormatDocx, logger.New("error")); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}

func TestRunUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "results.json")
	if err := os.WriteFile(inputPath, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	err := Run(context.Background(), inputPath, filepath.Join(dir, "out.pdf"), "pdf", logger.New("error"))
	if err == nil {
		t.Error("Run() should reject an unknown format")
	}
}
