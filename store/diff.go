package store

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// lineDelta reports how many lines a refresh added and removed,
// diffing at line granularity.
func lineDelta(prev, next string) (added, removed int) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(prev, next)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			added += countLines(d.Text)
		case diffpatch.DiffDelete:
			removed += countLines(d.Text)
		}
	}
	return added, removed
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
