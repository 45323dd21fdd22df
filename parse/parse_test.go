package parse

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mirrordat/datmirror/token"
)

type parseTest struct {
	in     string
	events []Event
	e      error
}

func TestReadEventOK(t *testing.T) {
	pts := []parseTest{
		{
			in: `clrmamepro (
	name "Test System"
	description "x"
)`,
			events: []Event{
				{Type: EventOpen, Name: "clrmamepro"},
				{Type: EventValue, Name: "name", Value: "Test System"},
				{Type: EventValue, Name: "description", Value: "x"},
				{Type: EventClose},
			},
		},
		{
			in: `name abc`,
			events: []Event{
				{Type: EventValue, Name: "name", Value: "abc"},
			},
		},
		{
			in: `name abc def`,
			events: []Event{
				{Type: EventValue, Name: "name", Value: "abc"},
			},
			e: &Error{}, // trailing "def" with no value
		},
		{
			in: `name ""`,
			events: []Event{
				{Type: EventValue, Name: "name", Value: ""},
			},
		},
		{
			in: `game ( rom ( size 1024 crc abcd1234 ) )`,
			events: []Event{
				{Type: EventOpen, Name: "game"},
				{Type: EventOpen, Name: "rom"},
				{Type: EventValue, Name: "size", Value: "1024"},
				{Type: EventValue, Name: "crc", Value: "abcd1234"},
				{Type: EventClose},
				{Type: EventClose},
			},
		},
		{
			in:     ``,
			events: nil,
		},
		{
			in:     "  \n\t ",
			events: nil,
		},
	}

	for _, pt := range pts {
		p := NewParser(strings.NewReader(pt.in))
		var got []Event
		var err error
		for {
			var ev *Event
			ev, err = p.ReadEvent()
			if err != nil {
				break
			}
			got = append(got, *ev)
		}
		if len(got) != len(pt.events) {
			t.Fatalf("%q: got %d events, want %d (%v)", pt.in, len(got), len(pt.events), got)
		}
		for i := range got {
			if got[i] != pt.events[i] {
				t.Errorf("%q event %d: got %v, want %v", pt.in, i, &got[i], &pt.events[i])
			}
		}
		if pt.e == nil {
			if err != io.EOF {
				t.Errorf("%q: expected io.EOF, got %v", pt.in, err)
			}
			continue
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected *Error, got %v", pt.in, err)
		}
	}
}

func TestUnbalancedClose(t *testing.T) {
	p := NewParser(strings.NewReader(`) oops`))
	_, err := p.ReadEvent()
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("expected ErrUnbalanced, got %v", err)
	}
}

func TestCloseAfterRecordBalances(t *testing.T) {
	p := NewParser(strings.NewReader(`a ( ) )`))
	for _, want := range []EventType{EventOpen, EventClose} {
		ev, err := p.ReadEvent()
		if err != nil {
			t.Fatal(err)
		}
		if ev.Type != want {
			t.Fatalf("got %v, want %v", ev.Type, want)
		}
	}
	// second close has no open record left
	_, err := p.ReadEvent()
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("expected ErrUnbalanced, got %v", err)
	}
}

func TestTruncatedKey(t *testing.T) {
	p := NewParser(strings.NewReader("name"))
	_, err := p.ReadEvent()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if !errors.Is(err, ErrParse) {
		t.Fatalf("ErrTruncated should unwrap to ErrParse, got %v", err)
	}
}

func TestUnterminatedQuote(t *testing.T) {
	p := NewParser(strings.NewReader(`name "abc`))
	_, err := p.ReadEvent()
	if !errors.Is(err, token.ErrUnterminated) {
		t.Fatalf("expected ErrUnterminated, got %v", err)
	}
}

func TestDepth(t *testing.T) {
	p := NewParser(strings.NewReader(`a ( b ( ) )`))
	depths := []int{1, 2, 1, 0}
	for i, want := range depths {
		if _, err := p.ReadEvent(); err != nil {
			t.Fatal(err)
		}
		if p.Depth() != want {
			t.Errorf("event %d: depth %d, want %d", i, p.Depth(), want)
		}
	}
}
