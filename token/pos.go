package token

import "fmt"

// Pos locates a byte in the input. Line and Col are 1-based.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}
