// Package merger turns a summarization results JSON map back into one
// document, ordered by chunk index.
package merger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sumkit/sumkit/internal/logger"
)

// Output formats.
const (
	FormatText = "txt"
	FormatDocx = "docx"
)

var rePartIndex = regexp.MustCompile(`_part_(\d+)`)

type entry struct {
	name    string
	index   int
	indexed bool
	texts   []string
}

// Merge extracts the summary texts from a results JSON map and joins them
// with newlines. Entries named "{stem}_part_{n}{ext}" are ordered by n;
// anything else follows in lexicographic key order. Both value shapes are
// accepted: plain strings and legacy objects carrying results[].text.
func Merge(data []byte) (string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("parse results JSON: %w", err)
	}

	entries := make([]entry, 0, len(raw))
	for name, value := range raw {
		texts, err := extractTexts(value)
		if err != nil {
			return "", fmt.Errorf("entry %s: %w", name, err)
		}
		index, indexed := partIndex(name)
		entries = append(entries, entry{name: name, index: index, indexed: indexed, texts: texts})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.indexed && b.indexed:
			if a.index != b.index {
				return a.index < b.index
			}
			return a.name < b.name
		case a.indexed != b.indexed:
			return a.indexed
		default:
			return a.name < b.name
		}
	})

	var texts []string
	for _, e := range entries {
		texts = append(texts, e.texts...)
	}
	return strings.Join(texts, "\n"), nil
}

// extractTexts handles the two shapes a results value can take.
func extractTexts(value json.RawMessage) ([]string, error) {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return []string{s}, nil
	}

	var legacy struct {
		Results []struct {
			Text *string `json:"text"`
		} `json:"results"`
	}
	if err := json.Unmarshal(value, &legacy); err != nil {
		return nil, fmt.Errorf("unsupported value shape: %w", err)
	}

	var texts []string
	for _, result := range legacy.Results {
		if result.Text != nil {
			texts = append(texts, *result.Text)
		}
	}
	return texts, nil
}

func partIndex(name string) (int, bool) {
	m := rePartIndex.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	index, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return index, true
}

// Run reads a results JSON file and writes the merged document to
// outputPath in the requested format.
func Run(ctx context.Context, inputPath, outputPath, format string, log logger.Logger) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read results %s: %w", inputPath, err)
	}

	merged, err := Merge(data)
	if err != nil {
		return err
	}

	switch format {
	case FormatText, "":
		if err := os.WriteFile(outputPath, []byte(merged), 0644); err != nil {
			return fmt.Errorf("write output %s: %w", outputPath, err)
		}
	case FormatDocx:
		title := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
		if err := writeDocx(title, merged, outputPath); err != nil {
			return fmt.Errorf("write docx %s: %w", outputPath, err)
		}
	default:
		return fmt.Errorf("unknown output format %q (expected txt or docx)", format)
	}

	log.Info(ctx, "Merged %s into %s", inputPath, outputPath)
	return nil
}
