package header

import (
	"errors"
	"fmt"
	"io"

	"github.com/mirrordat/datmirror/debug"
	"github.com/mirrordat/datmirror/parse"
	"github.com/mirrordat/datmirror/token"
)

// cmpPath is where the canonical name lives in clrmamepro files: the
// name key directly inside the top-level clrmamepro record.
var cmpPath = []string{"clrmamepro"}

func readCMP(r io.Reader) (string, error) {
	p := parse.NewParser(r)
	var scope []string
	for {
		ev, err := p.ReadEvent()
		if err == io.EOF {
			return "", ErrMissingName
		}
		if err != nil {
			var perr *parse.Error
			var serr *token.ScanError
			if errors.As(err, &perr) || errors.As(err, &serr) {
				return "", fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			return "", err
		}
		if debug.Events() {
			debug.Logf("cmp event: %v scope=%v", ev, scope)
		}
		switch ev.Type {
		case parse.EventOpen:
			scope = append(scope, ev.Name)
		case parse.EventClose:
			// the parser rejects a close below depth 0, so the
			// scope stack is non-empty here
			scope = scope[:len(scope)-1]
		case parse.EventValue:
			if ev.Name == "name" && pathEq(scope, cmpPath) {
				return ev.Value, nil
			}
		}
	}
}
