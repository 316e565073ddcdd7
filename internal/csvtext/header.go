package csvtext

import (
	"regexp"
	"slices"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// LocateHeader returns the index of the line in rawText that most resembles
// expectedHeaderLine. Lines are split on commas without regard to quoting and
// scored by how many expected names appear anywhere among their fields. The
// first line with the strictly highest score wins; when nothing matches the
// result is 0.
//
// The index counts raw lines, so it lines up with tokenized rows only while no
// quoted field above the header spans a line break.
func LocateHeader(expectedHeaderLine, rawText string) int {
	expected := strings.Split(expectedHeaderLine, ",")

	best, bestMatches := 0, 0
	for i, line := range lineBreak.Split(rawText, -1) {
		cols := strings.Split(line, ",")
		matches := 0
		for _, name := range expected {
			if slices.Contains(cols, name) {
				matches++
			}
		}
		if matches > bestMatches {
			best, bestMatches = i, matches
		}
	}
	return best
}

// Lines splits rawText the way LocateHeader numbers it.
func Lines(rawText string) []string {
	return lineBreak.Split(rawText, -1)
}
