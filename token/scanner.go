package token

import (
	"bufio"
	"io"
)

// Scanner scans a sequential source byte by byte with position
// tracking. Lookahead is limited to a single byte via Peek; consumed
// input is never revisited, so a caller that stops early leaves the
// rest of the source unread.
type Scanner struct {
	r    *bufio.Reader
	off  int
	line int
	col  int
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Pos reports the position of the next unread byte.
func (s *Scanner) Pos() Pos {
	return Pos{Offset: s.off, Line: s.line + 1, Col: s.col + 1}
}

// Peek returns the next byte without consuming it.
func (s *Scanner) Peek() (byte, error) {
	b, err := s.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadByte consumes and returns the next byte.
func (s *Scanner) ReadByte() (byte, error) {
	c, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	s.off++
	if c == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return c, nil
}

// SkipSpace consumes a run of whitespace. io.EOF here is the clean end
// of the token stream, not a failure.
func (s *Scanner) SkipSpace() error {
	for {
		c, err := s.Peek()
		if err != nil {
			return err
		}
		if !isSpace(c) {
			return nil
		}
		if _, err := s.ReadByte(); err != nil {
			return err
		}
	}
}

// Bare reads a run of bytes up to the next whitespace, ')' or end of
// input. The terminator is not consumed; ')' is always a standalone
// close marker and never part of a bare token.
func (s *Scanner) Bare() (string, error) {
	var b []byte
	for {
		c, err := s.Peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(c) || c == ')' {
			break
		}
		if _, err := s.ReadByte(); err != nil {
			return "", err
		}
		b = append(b, c)
	}
	return string(b), nil
}

// Quoted reads a double-quoted segment with the scanner positioned on
// the opening quote. Bytes are taken verbatim up to the closing quote;
// there is no escape processing. End of input before the closing quote
// is ErrUnterminated.
func (s *Scanner) Quoted() (string, error) {
	open := s.Pos()
	if _, err := s.ReadByte(); err != nil { // opening '"'
		return "", err
	}
	var b []byte
	for {
		c, err := s.ReadByte()
		if err == io.EOF {
			return "", &ScanError{Err: ErrUnterminated, Pos: open}
		}
		if err != nil {
			return "", err
		}
		if c == '"' {
			return string(b), nil
		}
		b = append(b, c)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
