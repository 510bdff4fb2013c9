package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtactoe/config"
	"termtactoe/types"
)

func TestColorConfig_SelectSavesBothColours(t *testing.T) {
	// Given: a config loaded from a file
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sound": {"enabled": false}}`), 0o600))
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	done := 0
	cc := NewColorConfig(cfg, discardLogger(), func() { done++ })

	// When: a cell colour is chosen
	cc.Select(2)

	// Then: the screen moves on to the winning line colour without leaving
	assert.Equal(t, cellColors[2].value, cc.selectedCell)
	assert.Equal(t, config.DefaultConfig.Theme.Colors.Cell, cfg.Theme.Colors.Cell, "nothing applied yet")
	assert.True(t, cc.editingHighlight)
	assert.Zero(t, done)

	// When: the highlight colour is chosen
	cc.Select(1)

	// Then: both are saved and the screen is done
	assert.Equal(t, cellColors[2].value, cfg.Theme.Colors.Cell)
	assert.Equal(t, highlightColors[1].value, cfg.Theme.Colors.Highlight)
	assert.Equal(t, 1, done)
	assert.False(t, cc.editingHighlight)

	saved, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cellColors[2].value, saved.Theme.Colors.Cell)
	assert.Equal(t, highlightColors[1].value, saved.Theme.Colors.Highlight)
	assert.False(t, saved.Sound.Enabled)
}

func TestColorConfig_CancelKeepsConfig(t *testing.T) {
	// Given: a cell colour chosen but no highlight yet
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	done := 0
	cc := NewColorConfig(cfg, discardLogger(), func() { done++ })
	cc.Select(3)

	// When: the players leave the screen
	cc.Cancel()

	// Then: the config and the file are untouched and the next visit starts over
	assert.Equal(t, config.DefaultConfig.Theme.Colors.Cell, cfg.Theme.Colors.Cell)
	assert.Equal(t, config.DefaultConfig.Theme.Colors.Cell, cc.selectedCell)
	assert.False(t, cc.editingHighlight)
	assert.Equal(t, len(cellColors), cc.colorList.GetItemCount())
	assert.Zero(t, done)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestColorConfig_SelectOutOfRange(t *testing.T) {
	cfg := config.DefaultConfig
	cc := NewColorConfig(&cfg, discardLogger(), nil)

	cc.Select(len(cellColors))

	assert.Equal(t, config.DefaultConfig.Theme.Colors.Cell, cfg.Theme.Colors.Cell)
	assert.False(t, cc.editingHighlight)
}

func TestColorConfig_ToggleMode(t *testing.T) {
	cfg := config.DefaultConfig
	cc := NewColorConfig(&cfg, discardLogger(), nil)

	cc.ToggleMode()
	assert.True(t, cc.editingHighlight)
	assert.Equal(t, len(highlightColors), cc.colorList.GetItemCount())

	cc.ToggleMode()
	assert.False(t, cc.editingHighlight)
	assert.Equal(t, len(cellColors), cc.colorList.GetItemCount())
}

func TestColorConfig_Preview(t *testing.T) {
	cfg := config.DefaultConfig
	cc := NewColorConfig(&cfg, discardLogger(), nil)
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 20)

	cc.drawPreview(screen, 0, 0, 60, 20)

	// the sample top row is drawn in the highlight colour
	l := boardLayout{left: 1, top: 1}
	cx, cy := l.cellOrigin(types.Pos{Row: 0, Col: 0})
	r, _, style, _ := screen.GetContent(cx+cellWidth/2, cy+cellHeight/2)
	_, bg, _ := style.Decompose()
	assert.Equal(t, cfg.Theme.Symbols.X, r)
	assert.Equal(t, config.ParseColor(cfg.Theme.Colors.Highlight), bg)
}
