package splitter

import "strings"

// Metadata and content markers produced by the subtitle converter.
const (
	startTimePrefix = "Start Time:"
	endTimePrefix   = "End Time:"
	scriptPrefix    = "Script: "
)

// FilterLines turns raw transcript lines into content lines. Lines carrying
// a timing marker are dropped entirely; the "Script: " marker is stripped
// (first occurrence only) and the rest of the line kept. Surviving lines are
// trimmed; lines empty after trimming are retained since they contribute no
// tokens.
func FilterLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, startTimePrefix) || strings.HasPrefix(line, endTimePrefix) {
			continue
		}
		if strings.HasPrefix(line, scriptPrefix) {
			line = line[len(scriptPrefix):]
		}
		out = append(out, strings.TrimSpace(line))
	}
	return out
}

// Flatten joins content lines with single spaces into the one continuous
// string that splitting operates on.
func Flatten(lines []string) string {
	return strings.Join(lines, " ")
}
