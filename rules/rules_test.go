package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtactoe/types"
)

func mustBoard(t *testing.T, s string) types.Board {
	t.Helper()
	b, err := types.ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestApplyMove(t *testing.T) {
	t.Run("places the mark and leaves other cells unchanged", func(t *testing.T) {
		// Given: a board with a few marks
		before := mustBoard(t, "X../.O./...")

		for r := 0; r < types.Size; r++ {
			for c := 0; c < types.Size; c++ {
				pos := types.Pos{Row: r, Col: c}
				if before.At(pos) != types.Empty {
					continue
				}

				// When: a mark is applied to an empty cell
				after, err := ApplyMove(before, pos, types.X)

				// Then: that cell holds the mark and nothing else changed
				require.NoError(t, err)
				assert.Equal(t, types.X, after.At(pos))
				for rr := 0; rr < types.Size; rr++ {
					for cc := 0; cc < types.Size; cc++ {
						other := types.Pos{Row: rr, Col: cc}
						if other != pos {
							assert.Equal(t, before.At(other), after.At(other))
						}
					}
				}
			}
		}
	})

	t.Run("does not modify the input board", func(t *testing.T) {
		var before types.Board

		after, err := ApplyMove(before, types.Pos{Row: 1, Col: 1}, types.O)

		require.NoError(t, err)
		assert.True(t, before.IsEmpty())
		assert.Equal(t, types.O, after.At(types.Pos{Row: 1, Col: 1}))
	})

	t.Run("rejects an occupied cell", func(t *testing.T) {
		// Given: a board where B2 is taken
		before := mustBoard(t, "X../.O./...")

		for _, mark := range []types.Mark{types.X, types.O} {
			// When: either player tries to play there
			after, err := ApplyMove(before, types.Pos{Row: 1, Col: 1}, mark)

			// Then: the move fails and the board is unchanged
			require.ErrorIs(t, err, ErrInvalidMove)
			assert.Equal(t, before, after)
		}
	})

	t.Run("rejects positions outside the grid", func(t *testing.T) {
		var board types.Board
		for _, pos := range []types.Pos{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: 5, Col: 5}} {
			after, err := ApplyMove(board, pos, types.X)
			require.ErrorIs(t, err, ErrOutOfRange, "pos %v", pos)
			assert.Equal(t, board, after)
		}
	})

	t.Run("rejects placing an empty mark", func(t *testing.T) {
		var board types.Board
		_, err := ApplyMove(board, types.Pos{}, types.Empty)
		assert.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		kind   types.OutcomeKind
		winner types.Mark
		line   [types.Size]types.Pos
	}{
		{
			name:  "empty board is in progress",
			board: ".../.../...",
			kind:  types.InProgress,
		},
		{
			name:   "top row for X",
			board:  "XXX/OO./...",
			kind:   types.Win,
			winner: types.X,
			line:   [3]types.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
		},
		{
			name:   "main diagonal on an otherwise empty board",
			board:  "X../.X./..X",
			kind:   types.Win,
			winner: types.X,
			line:   [3]types.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		},
		{
			name:   "middle column for O",
			board:  "XO./XO./.OX",
			kind:   types.Win,
			winner: types.O,
			line:   [3]types.Pos{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
		},
		{
			name:   "anti-diagonal for O",
			board:  "XXO/XO./O..",
			kind:   types.Win,
			winner: types.O,
			line:   [3]types.Pos{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
		},
		{
			name:   "bottom row is found before the diagonal",
			board:  "XOX/OXO/XXX",
			kind:   types.Win,
			winner: types.X,
			line:   [3]types.Pos{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
		},
		{
			name:  "full board without a line is a draw",
			board: "XOX/XOO/OXX",
			kind:  types.Draw,
		},
		{
			name:  "partially filled board is in progress",
			board: "XO./.X./..O",
			kind:  types.InProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: the board
			board := mustBoard(t, tt.board)

			// When: evaluating it
			got := Evaluate(board)

			// Then: the outcome matches
			assert.Equal(t, tt.kind, got.Kind)
			if tt.kind == types.Win {
				assert.Equal(t, tt.winner, got.Winner)
				assert.Equal(t, tt.line, got.Line)
			} else {
				assert.Equal(t, types.Empty, got.Winner)
			}
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	for _, s := range []string{".../.../...", "XXX/OO./...", "XOX/XOO/OXX", "XO./.X./..O"} {
		board := mustBoard(t, s)
		assert.Equal(t, Evaluate(board), Evaluate(board), "board %s", s)
	}
}

func TestEvaluate_MalformedBoard(t *testing.T) {
	// Given: an unreachable board with complete lines for both marks
	board := mustBoard(t, "OOO/XXX/...")

	// When: evaluating it
	got := Evaluate(board)

	// Then: the first line in scan order is reported
	assert.Equal(t, types.Win, got.Kind)
	assert.Equal(t, types.O, got.Winner)
	assert.Equal(t, [3]types.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, got.Line)
}

func TestFullGame(t *testing.T) {
	// Given: a sequence of alternating moves where X completes the left column
	moves := []types.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}

	var board types.Board
	var outcome types.Outcome
	for i, pos := range moves {
		require.False(t, outcome.Terminal(), "round ended early at move %d", i)

		var err error
		board, err = ApplyMove(board, pos, board.NextMark())
		require.NoError(t, err)
		outcome = Evaluate(board)
	}

	// Then: X wins on the first column
	assert.Equal(t, types.Win, outcome.Kind)
	assert.Equal(t, types.X, outcome.Winner)
	assert.Equal(t, Lines()[3], outcome.Line)
}
