// Package types contains shared data structures for termtactoe.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 3

// ErrBadNotation is returned when a board or position string cannot be parsed.
var ErrBadNotation = errors.New("bad notation")

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is a 3x3 grid indexed as Board[row][col], row 0 at the top.
// The zero value is an empty board.
type Board [Size][Size]Mark

// At returns the mark at pos. pos must be valid.
func (b Board) At(pos Pos) Mark {
	return b[pos.Row][pos.Col]
}

// Count returns how many cells hold m.
func (b Board) Count(m Mark) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == m {
				n++
			}
		}
	}
	return n
}

// Full returns true if no cell is empty.
func (b Board) Full() bool {
	return b.Count(Empty) == 0
}

// IsEmpty returns true if no mark has been placed yet.
func (b Board) IsEmpty() bool {
	return b.Count(Empty) == Size*Size
}

// NextMark returns whose move it is. X always opens and turns alternate,
// so the mover follows from the mark counts alone.
func (b Board) NextMark() Mark {
	if b.Count(X) == b.Count(O) {
		return X
	}
	return O
}

// String renders the board as three rows separated by '/', with '.' for
// empty cells, e.g. "XXX/OO./...".
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(cell.String())
			}
		}
	}
	return sb.String()
}

// ParseBoard parses the notation produced by Board.String. Empty cells may
// also be written as '-', '_' or ' '.
func ParseBoard(s string) (Board, error) {
	var b Board
	rows := strings.Split(s, "/")
	if len(rows) != Size {
		return b, fmt.Errorf("%w: board needs %d rows, got %d", ErrBadNotation, Size, len(rows))
	}
	for r, row := range rows {
		cells := []rune(row)
		if len(cells) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrBadNotation, r+1, len(cells))
		}
		for c, ch := range cells {
			switch ch {
			case 'x', 'X':
				b[r][c] = X
			case 'o', 'O':
				b[r][c] = O
			case '.', '-', '_', ' ':
				b[r][c] = Empty
			default:
				return b, fmt.Errorf("%w: unexpected %q in row %d", ErrBadNotation, ch, r+1)
			}
		}
	}
	return b, nil
}

// OutcomeKind classifies the state of a board.
type OutcomeKind uint8

const (
	InProgress OutcomeKind = iota
	Win
	Draw
)

func (k OutcomeKind) String() string {
	switch k {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Outcome is the result of evaluating a board. Winner and Line are only set
// when Kind is Win.
type Outcome struct {
	Kind   OutcomeKind
	Winner Mark
	Line   [Size]Pos
}

// Terminal returns true if the round is over.
func (o Outcome) Terminal() bool {
	return o.Kind == Win || o.Kind == Draw
}

// OnLine reports whether pos is part of the winning line.
func (o Outcome) OnLine(pos Pos) bool {
	if o.Kind != Win {
		return false
	}
	for _, p := range o.Line {
		if p == pos {
			return true
		}
	}
	return false
}
