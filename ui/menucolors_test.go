package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestMenuColors(t *testing.T) {
	assert.Equal(t, tcell.GetColor("#00ffff").Hex(), MenuColors.Turn.Hex(), "turn indicator is cyan")
	assert.Equal(t, "[#00ffff]", colorTag(MenuColors.Turn))
	assert.Equal(t, "[#d19a66]", colorTag(MenuColors.Win))
}
