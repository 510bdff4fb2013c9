package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/rivo/tview"

	"termtactoe/engine"
	"termtactoe/types"
)

// GameInfoPanel displays the score, turn, clock and move list alongside the board.
type GameInfoPanel struct {
	box *tview.TextView
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// Update redraws the panel from the engine's current state.
func (p *GameInfoPanel) Update(eng engine.GameEngine) {
	p.box.SetText(infoText(eng.Players(), eng.Score(), eng.Outcome(), eng.NextMark(), eng.Elapsed(), eng.History()))
}

// ScoreText renders the score line, e.g. "Ada (X): 2   |   Grace (O): 1".
func ScoreText(players [2]string, score engine.Score) string {
	return fmt.Sprintf("%s (X): %d   |   %s (O): %d", players[0], score.X, players[1], score.O)
}

// ElapsedText renders the round clock in whole seconds.
func ElapsedText(d time.Duration) string {
	return fmt.Sprintf("Time Elapsed: %ds", int(d/time.Second))
}

func infoText(players [2]string, score engine.Score, outcome types.Outcome, next types.Mark, elapsed time.Duration, history []engine.Move) string {
	var sb strings.Builder

	// Score section
	sb.WriteString("[white::b]Score[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&sb, "[white]%s[-] (X) %d\n", tview.Escape(players[0]), score.X)
	fmt.Fprintf(&sb, "[white]%s[-] (O) %d\n", tview.Escape(players[1]), score.O)
	if score.Draws > 0 {
		fmt.Fprintf(&sb, "[dimgray]draws %d[-]\n", score.Draws)
	}

	// Round section
	sb.WriteString("\n[white::b]Round[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	if !outcome.Terminal() {
		name := players[0]
		if next == types.O {
			name = players[1]
		}
		fmt.Fprintf(&sb, "%s%s's Turn[-]\n", colorTag(MenuColors.Turn), tview.Escape(name))
	} else {
		sb.WriteString("[dimgray]Game Over[-]\n")
	}
	fmt.Fprintf(&sb, "%s%s[-]\n", colorTag(MenuColors.Timer), ElapsedText(elapsed))

	if len(history) > 0 {
		sb.WriteString("\n[white::b]Moves[-:-:-]\n")
		sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
		for i, m := range history {
			marker := " "
			if i == len(history)-1 {
				marker = "[white]>[-]"
			}
			fmt.Fprintf(&sb, "%s[dimgray]%d.[-] %s %s\n", marker, m.Number, m.Mark, m.Pos)
		}
	}

	return sb.String()
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	board.refreshInfo()

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 30, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board
// and the status line.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()
	board.infoPanel = nil

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, gridWidth, 0, true)  // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, gridHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)               // bottom spacer
	gameFrame.AddItem(hint, 2, 0, false)
}
