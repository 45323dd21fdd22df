package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	XMLFormat Format = iota
	CMPFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":          XMLFormat,
		"xml":        XMLFormat,
		"c":          CMPFormat,
		"cmp":        CMPFormat,
		"clrmamepro": CMPFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case XMLFormat:
		return []byte("xml"), nil
	case CMPFormat:
		return []byte("cmp"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case XMLFormat:
		return ".xml"
	case CMPFormat:
		return ".dat"
	default:
		return ""
	}
}
