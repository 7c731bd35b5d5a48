package engine

import "fmt"

// String renders the position in algebraic notation: column letter a-h
// followed by row number 1-8, so "a1" is the top-left corner. Positions
// off the board render as raw coordinates.
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}

	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

// ParsePosition converts algebraic notation like "d3" into a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}

	return Position{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}, nil
}
