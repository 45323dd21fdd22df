package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flytam/filenamify"

	"github.com/mirrordat/datmirror/format"
	"github.com/mirrordat/datmirror/header"
)

// Outcome says what placing a datfile did to the output directory.
type Outcome int

const (
	Created Outcome = iota
	Updated
	Unchanged
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Unchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Result describes one stored datfile.
type Result struct {
	// Name is the canonical name from the header.
	Name string
	// Path is the destination file.
	Path    string
	Outcome Outcome
	// Added and Removed are line counts versus the previous content,
	// set when Outcome is Updated.
	Added, Removed int
}

// Resolve reads the canonical name of the datfile at src.
func Resolve(src string, f format.Format) (string, error) {
	name, err := header.ReadFile(src, f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Base(src), err)
	}
	return name, nil
}

// Store resolves the canonical name of the datfile at src and places
// it in dir.
func Store(src string, f format.Format, dir string) (*Result, error) {
	name, err := Resolve(src, f)
	if err != nil {
		return nil, err
	}
	return Place(src, name, f, dir)
}

// Place copies the datfile at src into dir under the sanitized
// canonical name plus the format suffix. An existing destination is
// compared against the new content so the result can say whether the
// mirror gained, refreshed or kept the file.
func Place(src, name string, f format.Format, dir string) (*Result, error) {
	safe, err := filenamify.Filenamify(name, filenamify.Options{Replacement: "_"})
	if err != nil {
		return nil, fmt.Errorf("unusable name %q: %w", name, err)
	}
	dest := filepath.Join(dir, safe+f.Suffix())
	res := &Result{Name: name, Path: dest}

	next, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}

	prev, err := os.ReadFile(dest)
	switch {
	case errors.Is(err, os.ErrNotExist):
		res.Outcome = Created
	case err != nil:
		return nil, err
	case bytes.Equal(prev, next):
		res.Outcome = Unchanged
		return res, nil
	default:
		res.Outcome = Updated
		res.Added, res.Removed = lineDelta(string(prev), string(next))
	}

	if err := os.WriteFile(dest, next, 0o644); err != nil {
		return nil, err
	}
	return res, nil
}
