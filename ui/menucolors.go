package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MenuColors defines the One Dark inspired palette for the setup and status screens.
var MenuColors = struct {
	Background tcell.Color // Window background
	Title      tcell.Color // Bright white for titles and scores
	Turn       tcell.Color // Turn indicator
	Timer      tcell.Color // Elapsed time
	Hint       tcell.Color // Dim gray for key hints
	ButtonBG   tcell.Color // Button background
	ButtonText tcell.Color // Button text
	Win        tcell.Color // Result line after a win
	Draw       tcell.Color // Result line after a draw
}{
	Background: tcell.GetColor("#282c34"),
	Title:      tcell.ColorWhite,
	Turn:       tcell.ColorAqua,
	Timer:      tcell.ColorYellow,
	Hint:       tcell.PaletteColor(245),
	ButtonBG:   tcell.GetColor("#e06c75"),
	ButtonText: tcell.ColorWhite,
	Win:        tcell.GetColor("#d19a66"),
	Draw:       tcell.GetColor("#98c379"),
}

// colorTag renders c as a tview dynamic colour tag.
func colorTag(c tcell.Color) string {
	return fmt.Sprintf("[#%06x]", c.Hex())
}
