package token

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestBare(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"clrmamepro (", "clrmamepro"},
		{"abc def", "abc"},
		{"abc)", "abc"},
		{"abc", "abc"},
		{"abc\tdef", "abc"},
	} {
		sc := NewScanner(strings.NewReader(tc.in))
		got, err := sc.Bare()
		if err != nil {
			t.Fatalf("Bare(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Bare(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBareStopsAtCloseMarker(t *testing.T) {
	sc := NewScanner(strings.NewReader("abc)"))
	if _, err := sc.Bare(); err != nil {
		t.Fatal(err)
	}
	c, err := sc.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if c != ')' {
		t.Errorf("expected ')' pending, got %q", c)
	}
}

func TestQuoted(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{`"a b c"`, "a b c"},
		{`""`, ""},
		{`"Test System" rest`, "Test System"},
		{`"a\nb"`, `a\nb`}, // no escape processing
	} {
		sc := NewScanner(strings.NewReader(tc.in))
		got, err := sc.Quoted()
		if err != nil {
			t.Fatalf("Quoted(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Quoted(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuotedUnterminated(t *testing.T) {
	sc := NewScanner(strings.NewReader(`"abc`))
	_, err := sc.Quoted()
	if !errors.Is(err, ErrUnterminated) {
		t.Fatalf("expected ErrUnterminated, got %v", err)
	}
	var serr *ScanError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ScanError, got %T", err)
	}
	if serr.Pos.Offset != 0 {
		t.Errorf("expected error at opening quote, got %v", serr.Pos)
	}
}

func TestSkipSpaceCleanEOF(t *testing.T) {
	sc := NewScanner(strings.NewReader(" \t\r\n "))
	if err := sc.SkipSpace(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestPosTracking(t *testing.T) {
	sc := NewScanner(strings.NewReader("ab\ncd"))
	if err := sc.SkipSpace(); err != nil {
		t.Fatal(err)
	}
	if _, err := sc.Bare(); err != nil {
		t.Fatal(err)
	}
	if err := sc.SkipSpace(); err != nil {
		t.Fatal(err)
	}
	pos := sc.Pos()
	if pos.Line != 2 || pos.Col != 1 || pos.Offset != 3 {
		t.Errorf("unexpected pos %v", pos)
	}
}
