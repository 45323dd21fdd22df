package header

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mirrordat/datmirror/format"
)

var (
	// ErrMissingName means the input parsed cleanly but no name was
	// found at the header path.
	ErrMissingName = errors.New("datfile header has no name")

	// ErrMalformed means the input violates the structural rules of
	// its declared format.
	ErrMalformed = errors.New("malformed datfile")
)

// Read scans r for the canonical name in the declared format. On
// success most of r is typically left unread; the name sits near the
// top of the file and reading stops at the first match.
func Read(r io.Reader, f format.Format) (string, error) {
	switch f {
	case format.XMLFormat:
		return readXML(r)
	case format.CMPFormat:
		return readCMP(r)
	default:
		return "", fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}

// ReadFile reads the canonical name from the file at path. The file is
// closed on every return path.
func ReadFile(path string, f format.Format) (string, error) {
	fl, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fl.Close()
	return Read(fl, f)
}

func pathEq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
