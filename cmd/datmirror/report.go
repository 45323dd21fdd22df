package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mirrordat/datmirror/store"
)

var (
	createdColor = color.New(color.FgGreen)
	updatedColor = color.New(color.FgYellow)
)

// useColor reports whether status lines should be colored: stdout is a
// terminal, -no-color was not given, and NO_COLOR is unset.
func useColor(cfg *MainConfig) bool {
	if cfg.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// printResults writes one status line per stored datfile plus a summary.
func printResults(w io.Writer, results []*store.Result, colored bool) {
	var created, updated, unchanged int
	for _, r := range results {
		switch r.Outcome {
		case store.Created:
			created++
			statusLine(w, colored, createdColor, "created", r.Name, "")
		case store.Updated:
			updated++
			delta := fmt.Sprintf(" (+%d -%d)", r.Added, r.Removed)
			statusLine(w, colored, updatedColor, "updated", r.Name, delta)
		default:
			unchanged++
			statusLine(w, colored, nil, "unchanged", r.Name, "")
		}
	}
	fmt.Fprintf(w, "%d datfiles: %d created, %d updated, %d unchanged\n",
		len(results), created, updated, unchanged)
}

func statusLine(w io.Writer, colored bool, c *color.Color, status, name, extra string) {
	if colored && c != nil {
		status = c.Sprint(status)
	}
	fmt.Fprintf(w, "%-9s %s%s\n", status, name, extra)
}
