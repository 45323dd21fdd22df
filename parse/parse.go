package parse

import (
	"io"

	"github.com/mirrordat/datmirror/token"
)

// Parser yields structural events from clrmamepro-format text.
type Parser struct {
	sc    *token.Scanner
	depth int
}

func NewParser(r io.Reader) *Parser {
	return &Parser{sc: token.NewScanner(r)}
}

// Depth reports the number of currently open records.
func (p *Parser) Depth() int { return p.depth }

// ReadEvent returns the next structural event. It returns io.EOF when
// the input is exhausted between events; a key at end of input with no
// following value or '(' is ErrTruncated.
func (p *Parser) ReadEvent() (*Event, error) {
	if err := p.sc.SkipSpace(); err != nil {
		return nil, err
	}

	pos := p.sc.Pos()
	c, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}

	if c == ')' {
		if p.depth == 0 {
			return nil, &Error{Err: ErrUnbalanced, Pos: pos}
		}
		if _, err := p.sc.ReadByte(); err != nil {
			return nil, err
		}
		p.depth--
		return &Event{Type: EventClose}, nil
	}

	name, err := p.sc.Bare()
	if err != nil {
		return nil, err
	}

	if err := p.sc.SkipSpace(); err != nil {
		if err == io.EOF {
			return nil, &Error{Err: ErrTruncated, Pos: p.sc.Pos()}
		}
		return nil, err
	}

	c, err = p.sc.Peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case '(':
		if _, err := p.sc.ReadByte(); err != nil {
			return nil, err
		}
		p.depth++
		return &Event{Type: EventOpen, Name: name}, nil
	case '"':
		val, err := p.sc.Quoted()
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventValue, Name: name, Value: val}, nil
	default:
		val, err := p.sc.Bare()
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventValue, Name: name, Value: val}, nil
	}
}
