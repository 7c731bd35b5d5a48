// Package engine implements the rules of Othello: the board, legal move
// computation and the capture rule that flips bracketed discs. It knows
// nothing about rendering or input.
package engine

import "strings"

// Size is the board edge length. Othello is always played on 8x8.
const Size = 8

// Disc is the content of a single board cell.
type Disc uint8

const (
	Empty Disc = iota
	Black
	White
)

// Opponent returns the other color. Empty maps to itself.
func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	}

	return d
}

func (d Disc) String() string {
	switch d {
	case Black:
		return "Black"
	case White:
		return "White"
	}

	return "Empty"
}

// Position is a board coordinate, zero-indexed from the top-left corner.
type Position struct {
	Row int
	Col int
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return inBounds(p.Row, p.Col)
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Board is an 8x8 grid of cells. It is a value type: assignment copies the
// whole grid, so callers can hold snapshots without aliasing live state.
type Board [Size][Size]Disc

// NewBoard returns a board with the four standard starting discs placed
// around the center.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black

	return b
}

// Count returns how many cells hold d.
func (b Board) Count(d Disc) int {
	count := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == d {
				count++
			}
		}
	}

	return count
}

// String renders the board with algebraic column headers, one row per
// line. Black discs print as B, white discs as W, empty cells as dots.
func (b Board) String() string {
	var sb strings.Builder

	sb.WriteByte(' ')
	for c := 0; c < Size; c++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + c))
	}
	sb.WriteByte('\n')

	for r := 0; r < Size; r++ {
		sb.WriteByte(byte('1' + r))
		for c := 0; c < Size; c++ {
			sb.WriteByte(' ')
			switch b[r][c] {
			case Black:
				sb.WriteByte('B')
			case White:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
