package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtactoe/engine"
)

// GameSetupUI provides a form for entering the players' names.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig, bool)
	onCancel func()
	onColors func()

	playerX string
	playerO string
	sound   bool
}

// NewGameSetup creates a new game setup form. onStart receives the names and
// whether sound is on.
func NewGameSetup(defaults engine.GameConfig, sound bool, onStart func(engine.GameConfig, bool), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		playerX:  defaults.PlayerX,
		playerO:  defaults.PlayerO,
		sound:    sound,
	}

	form := tview.NewForm()

	form.AddInputField("Player 1 Name (X)", defaults.PlayerX, engine.MaxNameLength, nil, func(text string) {
		setup.playerX = text
	})

	form.AddInputField("Player 2 Name (O)", defaults.PlayerO, engine.MaxNameLength, nil, func(text string) {
		setup.playerO = text
	})

	form.AddCheckbox("Sound", sound, func(checked bool) {
		setup.sound = checked
	})

	form.AddButton("Start Game", setup.Start)

	form.AddButton("Colors", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" Tic Tac Toe - Enter Player Names ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	// Create help text
	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(tcell.ColorGray)

	// Create flex layout with form and help text
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the names currently entered, normalized.
func (s *GameSetupUI) Config() engine.GameConfig {
	return engine.GameConfig{PlayerX: s.playerX, PlayerO: s.playerO}.Normalize()
}

// Start submits the form.
func (s *GameSetupUI) Start() {
	s.onStart(s.Config(), s.sound)
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
