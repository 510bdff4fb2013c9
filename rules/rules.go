// Package rules applies moves to a tic-tac-toe board and decides the outcome.
// Functions here are pure: boards are values and are never modified in place.
package rules

import (
	"errors"
	"fmt"

	"termtactoe/types"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrOutOfRange  = errors.New("position out of range")
)

// lines holds every row, column and diagonal in scan order.
var lines = [8][types.Size]types.Pos{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Lines returns the eight winning lines: rows 0-2, columns 0-2, the main
// diagonal and the anti-diagonal.
func Lines() [8][types.Size]types.Pos {
	return lines
}

// ApplyMove places mark at pos and returns the resulting board. It does not
// check whose turn it is; callers derive the mark from Board.NextMark.
func ApplyMove(board types.Board, pos types.Pos, mark types.Mark) (types.Board, error) {
	if !pos.Valid() {
		return board, fmt.Errorf("%w: row %d col %d", ErrOutOfRange, pos.Row, pos.Col)
	}
	if mark == types.Empty {
		return board, fmt.Errorf("%w: no mark to place at %s", ErrInvalidMove, pos)
	}
	if board.At(pos) != types.Empty {
		return board, fmt.Errorf("%w: %s is already taken by %s", ErrInvalidMove, pos, board.At(pos))
	}

	board[pos.Row][pos.Col] = mark
	return board, nil
}

// Evaluate reports whether the board has a winner, is drawn, or is still in
// play. The first complete line in scan order decides the winner.
func Evaluate(board types.Board) types.Outcome {
	for _, line := range lines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != types.Empty && a == b && b == c {
			return types.Outcome{Kind: types.Win, Winner: a, Line: line}
		}
	}

	// the round continues until every cell is filled
	if !board.Full() {
		return types.Outcome{Kind: types.InProgress}
	}

	return types.Outcome{Kind: types.Draw}
}
