// Package format normalizes raw model output into the canonical reply
// text stored and returned to clients.
package format

import (
	"regexp"
	"strings"
)

var emphasis = regexp.MustCompile(`\*{1,3}`)

// Normalize strips markdown emphasis markers (runs of 1-3 asterisks)
// while keeping the words they wrapped, trims each non-blank line,
// drops blank runs, and rejoins the remaining lines separated by one
// blank line. Emphasis is stripped before the line pass so a line of
// bare asterisks collapses like any other blank line. Idempotent.
func Normalize(raw string) string {
	cleaned := emphasis.ReplaceAllString(raw, "")
	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n\n")
}
