// termtactoe is a terminal application to play tic-tac-toe against a friend
// on the same keyboard.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtactoe/config"
	"termtactoe/engine"
	"termtactoe/engine/hotseat"
	"termtactoe/ui"
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var sounder *ui.Sounder
var logger *slog.Logger
var cfg *config.Config

// last match played, its score is printed after the UI exits
var lastMatch engine.GameEngine

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "termtactoe: %s\n", err)
		if config.IsInvalid(err) {
			fmt.Fprintln(os.Stderr, "Run 'termtactoe env' for the supported settings.")
		}
		os.Exit(1)
	}
}

// run builds the screens and blocks until the players quit.
func run(c *config.Config) error {
	cfg = c

	var closeLog func()
	logger, closeLog = initLogger(cfg)
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	quickStart := flagQuickStart || flagPlayerX != "" || flagPlayerO != "" || flagFocus

	app = tview.NewApplication().SetScreen(screen).EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" # termtactoe ")

	sounder = ui.NewSounder(screen, cfg.Sound.Enabled && !flagNoSound, logger)
	sounder.SetQueueUpdate(func(f func()) {
		go app.QueueUpdate(f)
	})
	defer sounder.Close()

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(app, cfg, gameHint, sounder, logger)
	gameBoard.SetOnQuit(func() {
		gameBoard.Close()
		rootPage.SwitchToPage("setup")
	})

	// Create game layout with centered board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Focus mode swaps the layout, everything else belongs to the board
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'f' {
			toggleFocus()
			return nil
		}
		return gameBoard.HandleKey(event)
	})

	// Game setup screen
	defaults := engine.GameConfig{PlayerX: cfg.Players.X, PlayerO: cfg.Players.O}.Normalize()
	setupUI := ui.NewGameSetup(
		defaults,
		sounder.Enabled(),
		func(gameCfg engine.GameConfig, sound bool) {
			sounder.SetEnabled(sound)
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, logger, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			colorConfig.Cancel()
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(engine.GameConfig{
			PlayerX: firstNonEmpty(flagPlayerX, defaults.PlayerX),
			PlayerO: firstNonEmpty(flagPlayerO, defaults.PlayerO),
		}.Normalize())
		if flagFocus {
			toggleFocus()
		}
	}

	logger.Info("starting", "version", Version, "config", cfg.Path())
	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		return err
	}
	gameBoard.Close()

	if lastMatch != nil && lastMatch.Score() != (engine.Score{}) {
		fmt.Println(ui.ScoreText(lastMatch.Players(), lastMatch.Score()))
	}
	return nil
}

// startGame starts a match with the given players.
func startGame(gameCfg engine.GameConfig) {
	eng := hotseat.New(gameCfg, hotseat.WithLogger(logger))
	gameBoard.ConnectEngine(eng)
	lastMatch = eng
	rootPage.SwitchToPage("gameview")
}

func toggleFocus() {
	if gameBoard.ToggleFocusMode() {
		ui.BuildFocusLayout(gameFrame, gameBoard, gameHint)
	} else {
		ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
	}
}

// initLogger opens the log file. The terminal belongs to the UI, so when
// the file cannot be opened logs are discarded.
func initLogger(c *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	path, err := c.LogPath()
	if err != nil {
		return discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discard, func() {}
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), func() { f.Close() }
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
