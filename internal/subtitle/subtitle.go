// Package subtitle converts .srt subtitle files into the annotated
// transcript text the splitter consumes.
package subtitle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/sumkit/sumkit/internal/logger"
)

var timeRegex = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2}),(\d{3}) --> (\d{2}):(\d{2}):(\d{2}),(\d{3})`)

// Cue is one subtitle with its timing in milliseconds.
type Cue struct {
	Text    string
	StartMS int64
	EndMS   int64
}

// Parse reads .srt content and returns its cues. Sequence numbers and blank
// lines are skipped; multi-line cue text is joined with single spaces.
func Parse(r io.Reader) ([]Cue, error) {
	var cues []Cue
	var current strings.Builder
	var startMS, endMS int64

	flush := func() {
		if current.Len() == 0 {
			return
		}
		cues = append(cues, Cue{
			Text:    strings.TrimSpace(current.String()),
			StartMS: startMS,
			EndMS:   endMS,
		})
		current.Reset()
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if m := timeRegex.FindStringSubmatch(line); m != nil {
			flush()
			startMS = toMillis(m[1], m[2], m[3], m[4])
			endMS = toMillis(m[5], m[6], m[7], m[8])
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isAllDigits(trimmed) {
			continue
		}
		current.WriteString(" ")
		current.WriteString(trimmed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}

	flush()
	return cues, nil
}

// Render formats cues as the annotated transcript blocks consumed by the
// splitter's line filter.
func Render(cues []Cue) string {
	var b strings.Builder
	for _, cue := range cues {
		fmt.Fprintf(&b, "Script: %s\nStart Time: %d\nEnd Time: %d\n\n",
			cue.Text, cue.StartMS, cue.EndMS)
	}
	return b.String()
}

// Convert parses the .srt file at inputPath and writes the annotated
// transcript to outputPath.
func Convert(ctx context.Context, inputPath, outputPath string, log logger.Logger) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open subtitle %s: %w", inputPath, err)
	}
	defer f.Close()

	cues, err := Parse(f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(Render(cues)), 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	log.Info(ctx, "Converted %d cue(s) from %s to %s", len(cues), inputPath, outputPath)
	return nil
}

// DefaultOutputPath places the converted transcript beside the input as
// "{stem}_converted.txt".
func DefaultOutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+"_converted.txt")
}

func toMillis(h, m, s, ms string) int64 {
	hours, _ := strconv.ParseInt(h, 10, 64)
	minutes, _ := strconv.ParseInt(m, 10, 64)
	seconds, _ := strconv.ParseInt(s, 10, 64)
	millis, _ := strconv.ParseInt(ms, 10, 64)
	return hours*3600*1000 + minutes*60*1000 + seconds*1000 + millis
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
