package parse

import "fmt"

// Event is one structural event from the parser.
type Event struct {
	Type EventType

	// Name is the record name for EventOpen and the key for
	// EventValue. Unset for EventClose.
	Name string

	// Value is set for EventValue only.
	Value string
}

func (e *Event) String() string {
	switch e.Type {
	case EventOpen:
		return fmt.Sprintf("Open(%s)", e.Name)
	case EventClose:
		return "Close"
	case EventValue:
		return fmt.Sprintf("Value(%s=%q)", e.Name, e.Value)
	default:
		return "Unknown"
	}
}

// EventType represents the type of a structural event.
type EventType int

const (
	// EventOpen enters a named record: a bare name followed by '('.
	EventOpen EventType = iota
	// EventClose exits the innermost open record: a ')'.
	EventClose
	// EventValue is a key with a quoted or unquoted value.
	EventValue
)

func (t EventType) String() string {
	switch t {
	case EventOpen:
		return "Open"
	case EventClose:
		return "Close"
	case EventValue:
		return "Value"
	default:
		return "Unknown"
	}
}
