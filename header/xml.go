package header

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// xmlPath is the ancestor path of the name element in logiqx XML
// datfiles.
var xmlPath = []string{"datafile", "header"}

// readXML wraps the stdlib pull decoder with an explicit scope stack.
// The name's character data is only accumulated while inside the
// target element, so arbitrarily large files cost O(depth) memory.
func readXML(r io.Reader) (string, error) {
	src := &readTracker{r: r}
	dec := xml.NewDecoder(src)
	dec.CharsetReader = charset.NewReaderLabel
	var (
		scope   []string
		text    strings.Builder
		capture bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", ErrMissingName
		}
		if err != nil {
			// errors raised by the source itself propagate as
			// themselves; everything the decoder objects to,
			// syntax or encoding, means the file is bad
			if src.err != nil && err == src.err {
				return "", err
			}
			return "", fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			scope = append(scope, t.Name.Local)
			if t.Name.Local == "name" && pathEq(scope[:len(scope)-1], xmlPath) {
				capture = true
				text.Reset()
			}
		case xml.CharData:
			if capture {
				text.Write(t)
			}
		case xml.EndElement:
			if len(scope) == 0 {
				return "", fmt.Errorf("%w: unexpected end element </%s>", ErrMalformed, t.Name.Local)
			}
			scope = scope[:len(scope)-1]
			if t.Name.Local == "name" && pathEq(scope, xmlPath) {
				return text.String(), nil
			}
		}
	}
}

// readTracker remembers the last error its reader produced, so decoder
// failures can be told apart from source failures.
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}
