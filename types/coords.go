package types

import (
	"fmt"
	"strings"
)

// Display coordinate system:
// - Columns: A-C (left to right)
// - Rows: 1-3 (from the top, matching the on-screen grid)
// - Example: A1 is the top-left cell, C3 the bottom-right
//
// Internal coordinate system:
// - Row: 0-2 (top to bottom)
// - Col: 0-2 (left to right)

// Pos addresses a cell on the board.
type Pos struct {
	Row int
	Col int
}

// Valid returns true if the position lies on the board.
func (p Pos) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// String converts the position to display notation, e.g. Pos{0, 0} -> A1.
func (p Pos) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+rune(p.Col), p.Row+1)
}

// ParsePos converts display notation back to a position.
// For example: a1 -> (0, 0), B3 -> (2, 1).
func ParsePos(s string) (Pos, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) != 2 {
		return Pos{}, fmt.Errorf("%w: invalid position %q", ErrBadNotation, s)
	}
	p := Pos{
		Col: int(s[0]) - 'A',
		Row: int(s[1]) - '1',
	}
	if !p.Valid() {
		return Pos{}, fmt.Errorf("%w: position out of bounds %q", ErrBadNotation, s)
	}
	return p, nil
}

// PosFromKey maps the digits 1-9 to cells in row-major order starting at the
// top-left. ok is false for any other rune.
func PosFromKey(r rune) (Pos, bool) {
	if r < '1' || r > '9' {
		return Pos{}, false
	}
	i := int(r - '1')
	return Pos{Row: i / Size, Col: i % Size}, true
}
