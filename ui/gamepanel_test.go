package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"termtactoe/engine"
	"termtactoe/types"
)

func TestScoreText(t *testing.T) {
	got := ScoreText([2]string{"Ada", "Grace"}, engine.Score{X: 2, O: 1, Draws: 4})
	assert.Equal(t, "Ada (X): 2   |   Grace (O): 1", got)
}

func TestElapsedText(t *testing.T) {
	assert.Equal(t, "Time Elapsed: 0s", ElapsedText(900*time.Millisecond))
	assert.Equal(t, "Time Elapsed: 75s", ElapsedText(75*time.Second+300*time.Millisecond))
}

func TestInfoText(t *testing.T) {
	players := [2]string{"Ada", "Grace"}
	history := []engine.Move{
		{Pos: types.Pos{Row: 1, Col: 1}, Mark: types.X, Number: 1},
		{Pos: types.Pos{Row: 0, Col: 2}, Mark: types.O, Number: 2},
	}

	t.Run("round in progress", func(t *testing.T) {
		text := infoText(players, engine.Score{X: 1}, types.Outcome{}, types.X, 12*time.Second, history)

		assert.Contains(t, text, "Ada[-] (X) 1")
		assert.Contains(t, text, "Ada's Turn")
		assert.Contains(t, text, "Time Elapsed: 12s")
		assert.Contains(t, text, "1.[-] X B2")
		assert.Contains(t, text, "2.[-] O C1")
		assert.NotContains(t, text, "draws")
	})

	t.Run("round over", func(t *testing.T) {
		outcome := types.Outcome{Kind: types.Draw}
		text := infoText(players, engine.Score{Draws: 1}, outcome, types.O, time.Second, nil)

		assert.Contains(t, text, "Game Over")
		assert.Contains(t, text, "draws 1")
		assert.NotContains(t, text, "Turn")
		assert.NotContains(t, text, "Moves")
	})
}

func TestGameInfoPanel_Update(t *testing.T) {
	board, eng, _ := newTestBoard(t)
	panel := NewGameInfoPanel()
	press(board, "5")

	panel.Update(eng)

	text := panel.Box().GetText(true)
	assert.Contains(t, text, "Grace's Turn")
	assert.Contains(t, text, "1. X B2")
}
