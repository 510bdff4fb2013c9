// Package ui specifies custom controls for tview to play tic-tac-toe in the terminal.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtactoe/config"
	"termtactoe/engine"
	"termtactoe/types"
)

const (
	cellWidth  = 7
	cellHeight = 3
	labelWidth = 3 // row numbers left of the grid

	gridWidth  = labelWidth + types.Size*cellWidth + types.Size - 1
	gridHeight = types.Size*cellHeight + types.Size - 1 + 1 // + column letters
)

// boardLayout maps between board cells and screen coordinates.
type boardLayout struct {
	left int
	top  int
}

// newBoardLayout centres the grid inside the given rectangle.
func newBoardLayout(x, y, width, height int) boardLayout {
	l := boardLayout{left: x, top: y}
	if width > gridWidth {
		l.left += (width - gridWidth) / 2
	}
	if height > gridHeight {
		l.top += (height - gridHeight) / 2
	}
	return l
}

// cellOrigin returns the top-left screen coordinate of a cell.
func (l boardLayout) cellOrigin(p types.Pos) (int, int) {
	return l.left + labelWidth + p.Col*(cellWidth+1), l.top + p.Row*(cellHeight+1)
}

// cellAt returns the cell under a screen coordinate. Grid lines and labels
// belong to no cell.
func (l boardLayout) cellAt(x, y int) (types.Pos, bool) {
	dx := x - l.left - labelWidth
	dy := y - l.top
	if dx < 0 || dy < 0 {
		return types.Pos{}, false
	}
	if dx%(cellWidth+1) == cellWidth || dy%(cellHeight+1) == cellHeight {
		return types.Pos{}, false
	}
	p := types.Pos{Row: dy / (cellHeight + 1), Col: dx / (cellWidth + 1)}
	return p, p.Valid()
}

type boardStyles struct {
	background tcell.Color
	cell       tcell.Color
	line       tcell.Color
	x          tcell.Color
	o          tcell.Color
	cursor     tcell.Color
	highlight  tcell.Color
	symbolX    rune
	symbolO    rune
}

type BoardUI struct {
	Box       *tview.Box
	hint      *tview.TextView
	infoPanel *GameInfoPanel
	cfg       *config.Config
	eng       engine.GameEngine
	sound     *Sounder
	log       *slog.Logger
	styles    boardStyles
	layout    boardLayout

	board   types.Board
	outcome types.Outcome
	selRow  int
	selCol  int

	flash    *Ticker
	flashOn  bool
	flashGen int
	clock    *Ticker

	focusMode bool
	onQuit    func()

	// queueUpdate runs f on the UI goroutine and redraws. It must not
	// block the caller.
	queueUpdate func(f func())
}

// NewBoard creates the board view. hint receives the status text.
func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView, sound *Sounder, log *slog.Logger) *BoardUI {
	board := &BoardUI{
		Box:    tview.NewBox(),
		hint:   hint,
		sound:  sound,
		log:    log.With("component", "board"),
		selRow: -1,
		selCol: -1,
	}
	board.queueUpdate = func(f func()) {
		// QueueUpdateDraw waits for the event loop, and the event loop
		// waits for stopped timers, so never block the timer on it.
		go app.QueueUpdateDraw(f)
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(board.handleMouse)
	return board
}

// SetConfig applies colours and symbols from c.
func (g *BoardUI) SetConfig(c *config.Config) {
	colors := c.Theme.Colors
	g.styles = boardStyles{
		background: config.ParseColor(colors.Background),
		cell:       config.ParseColor(colors.Cell),
		line:       config.ParseColor(colors.Line),
		x:          config.ParseColor(colors.X),
		o:          config.ParseColor(colors.O),
		cursor:     config.ParseColor(colors.Cursor),
		highlight:  config.ParseColor(colors.Highlight),
		symbolX:    c.Theme.Symbols.X,
		symbolO:    c.Theme.Symbols.O,
	}
	g.cfg = c
}

// SetOnQuit sets the function called when the players leave the board.
func (g *BoardUI) SetOnQuit(f func()) {
	g.onQuit = f
}

// ConnectEngine starts a match on e and begins the elapsed-time refresh.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) {
	g.Close()
	g.eng = e

	e.OnMove(func(move engine.Move, board types.Board) {
		g.board = board
		g.sound.Play(CueMove)
	})
	e.OnGameEnd(func(outcome types.Outcome) {
		g.outcome = outcome
		g.ResetSelection()
		if outcome.Kind == types.Win {
			g.sound.Play(CueWin)
			g.startFlash()
		} else {
			g.sound.Play(CueDraw)
		}
	})

	e.Start()
	g.sync()
	g.refresh()

	g.clock = StartTicker(context.Background(), time.Second, 0, func(int) {
		g.queueUpdate(g.refreshInfo)
	})
}

// Close stops the timers and releases the engine.
func (g *BoardUI) Close() {
	g.stopFlash()
	g.clock.Stop()
	g.clock = nil
	if g.eng != nil {
		g.eng.Close()
		g.eng = nil
	}
}

// PlayMove plays the next mover's mark at pos. Rejected moves are ignored.
func (g *BoardUI) PlayMove(pos types.Pos) {
	if g.eng == nil {
		return
	}
	if err := g.eng.PlayMove(pos); err != nil {
		if !errors.Is(err, engine.ErrRoundOver) {
			g.log.Debug("click ignored", "pos", pos.String(), "error", err)
		}
		return
	}
	g.sync()
	g.refresh()
}

// NewRound clears the board for the next round. The score is kept.
func (g *BoardUI) NewRound() {
	if g.eng == nil {
		return
	}
	g.stopFlash()
	g.eng.NewRound()
	g.sync()
	g.ResetSelection()
	g.refresh()
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

// IsFinished returns true if the current round is over.
func (g *BoardUI) IsFinished() bool {
	return g.outcome.Terminal()
}

func (g *BoardUI) SelectedTile() *types.Pos {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	return &types.Pos{Row: g.selRow, Col: g.selCol}
}

// MoveSelection moves the cursor by dRow, dCol, placing it in the centre
// first if there is no cursor yet.
func (g *BoardUI) MoveSelection(dRow, dCol int) {
	if g.IsFinished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		g.selRow, g.selCol = types.Size/2, types.Size/2
		return
	}
	next := types.Pos{Row: g.selRow + dRow, Col: g.selCol + dCol}
	if !next.Valid() {
		return
	}
	g.selRow, g.selCol = next.Row, next.Col
}

func (g *BoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

// HandleKey handles board keys. Unknown runes are swallowed, other keys are
// returned for the caller.
func (g *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		g.MoveSelection(-1, 0)
	case tcell.KeyDown:
		g.MoveSelection(1, 0)
	case tcell.KeyLeft:
		g.MoveSelection(0, -1)
	case tcell.KeyRight:
		g.MoveSelection(0, 1)
	case tcell.KeyEnter:
		g.confirm()
	case tcell.KeyEscape:
		g.quit()
	case tcell.KeyRune:
		switch r := event.Rune(); r {
		case 'k':
			g.MoveSelection(-1, 0)
		case 'j':
			g.MoveSelection(1, 0)
		case 'h':
			g.MoveSelection(0, -1)
		case 'l':
			g.MoveSelection(0, 1)
		case ' ':
			g.confirm()
		case 'r':
			g.NewRound()
		case 'n':
			if g.IsFinished() {
				g.NewRound()
			}
		case 'q':
			if g.SelectedTile() != nil {
				g.ResetSelection()
			} else {
				g.quit()
			}
		default:
			if pos, ok := types.PosFromKey(r); ok {
				g.PlayMove(pos)
			}
		}
	default:
		return event
	}
	return nil
}

func (g *BoardUI) confirm() {
	if g.IsFinished() {
		g.NewRound()
		return
	}
	if sel := g.SelectedTile(); sel != nil {
		g.PlayMove(*sel)
	}
}

func (g *BoardUI) quit() {
	if g.onQuit != nil {
		g.onQuit()
	}
}

func (g *BoardUI) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}
	x, y := event.Position()
	if !g.Box.InRect(x, y) {
		return action, event
	}
	if g.IsFinished() {
		g.NewRound()
		return action, nil
	}
	if pos, ok := g.layout.cellAt(x, y); ok {
		g.selRow, g.selCol = pos.Row, pos.Col
		g.PlayMove(pos)
	}
	return action, nil
}

// startFlash blinks the winning line FlashCount times.
func (g *BoardUI) startFlash() {
	g.stopFlash()
	count := g.cfg.Animation.FlashCount * 2
	if count == 0 {
		g.flashOn = true
		return
	}
	g.flashOn = true
	gen := g.flashGen
	g.flash = StartTicker(context.Background(), g.cfg.Animation.FlashInterval(), count, func(i int) {
		g.queueUpdate(func() {
			if g.flashGen != gen {
				return
			}
			// the line stays lit after the last phase
			g.flashOn = i%2 == 1
		})
	})
}

func (g *BoardUI) stopFlash() {
	g.flash.Stop()
	g.flash = nil
	g.flashGen++
	g.flashOn = false
}

// sync copies the engine state used for drawing.
func (g *BoardUI) sync() {
	if g.eng == nil {
		return
	}
	g.board = g.eng.BoardState()
	g.outcome = g.eng.Outcome()
}

// refresh updates the side panel and the status line.
func (g *BoardUI) refresh() {
	g.refreshInfo()
	g.refreshHint()
}

func (g *BoardUI) refreshInfo() {
	if g.infoPanel != nil && g.eng != nil {
		g.infoPanel.Update(g.eng)
	}
}

func (g *BoardUI) refreshHint() {
	if g.hint == nil || g.eng == nil {
		return
	}
	players := g.eng.Players()
	name := func(m types.Mark) string {
		if m == types.O {
			return players[1]
		}
		return players[0]
	}

	var statusLine, controlsLine string
	switch g.outcome.Kind {
	case types.Win:
		statusLine = fmt.Sprintf("%s%s wins![-]", colorTag(MenuColors.Win), tview.Escape(name(g.outcome.Winner)))
		controlsLine = "  ⏎/n next round   q menu"
	case types.Draw:
		statusLine = fmt.Sprintf("%sIt's a draw![-]", colorTag(MenuColors.Draw))
		controlsLine = "  ⏎/n next round   q menu"
	default:
		next := g.eng.NextMark()
		statusLine = fmt.Sprintf("%s%s's turn (%s)[-]", colorTag(MenuColors.Turn), tview.Escape(name(next)), next)
		controlsLine = "  hjkl/↑↓←→ move   ⏎ play   1-9 cell   r restart   f focus   q menu"
	}
	// Focus mode shows minimal hint
	if g.focusMode {
		controlsLine = "  f to toggle"
	}
	g.hint.SetText(fmt.Sprintf("  %s\n%s%s[-]", statusLine, colorTag(MenuColors.Hint), controlsLine))
}

func (g *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	g.layout = newBoardLayout(x, y, width, height)
	l := g.layout
	lineStyle := tcell.StyleDefault.Background(g.styles.background).Foreground(g.styles.line)
	labelStyle := tcell.StyleDefault.Background(g.styles.background).Foreground(MenuColors.Hint)

	for row := 0; row < types.Size; row++ {
		for col := 0; col < types.Size; col++ {
			pos := types.Pos{Row: row, Col: col}
			g.drawCell(screen, pos)

			cx, cy := l.cellOrigin(pos)
			// Grid lines right of and below the cell
			if col < types.Size-1 {
				for dy := 0; dy < cellHeight; dy++ {
					screen.SetContent(cx+cellWidth, cy+dy, '│', nil, lineStyle)
				}
			}
			if row < types.Size-1 {
				for dx := 0; dx < cellWidth; dx++ {
					screen.SetContent(cx+dx, cy+cellHeight, '─', nil, lineStyle)
				}
				if col < types.Size-1 {
					screen.SetContent(cx+cellWidth, cy+cellHeight, '┼', nil, lineStyle)
				}
			}
		}
	}

	// Coordinates: row numbers on the left, column letters below
	for i := 0; i < types.Size; i++ {
		_, cy := l.cellOrigin(types.Pos{Row: i})
		screen.SetContent(l.left+1, cy+cellHeight/2, rune('1'+i), nil, labelStyle)
		cx, _ := l.cellOrigin(types.Pos{Col: i})
		screen.SetContent(cx+cellWidth/2, l.top+gridHeight-1, rune('A'+i), nil, labelStyle)
	}

	return x, y, width, height
}

func (g *BoardUI) drawCell(screen tcell.Screen, pos types.Pos) {
	bg := g.styles.cell
	switch {
	case g.flashOn && g.outcome.OnLine(pos):
		bg = g.styles.highlight
	case !g.IsFinished() && pos.Row == g.selRow && pos.Col == g.selCol:
		bg = g.styles.cursor
	}
	style := tcell.StyleDefault.Background(bg)

	cx, cy := g.layout.cellOrigin(pos)
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			screen.SetContent(cx+dx, cy+dy, ' ', nil, style)
		}
	}

	switch g.board.At(pos) {
	case types.X:
		screen.SetContent(cx+cellWidth/2, cy+cellHeight/2, g.styles.symbolX, nil, style.Foreground(g.styles.x).Bold(true))
	case types.O:
		screen.SetContent(cx+cellWidth/2, cy+cellHeight/2, g.styles.symbolO, nil, style.Foreground(g.styles.o).Bold(true))
	}
}
