package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtactoe/config"
	"termtactoe/types"
)

type namedColor struct {
	value string
	name  string
}

// Cell colours to choose from
var cellColors = []namedColor{
	{"#61AFEF", "Sky Blue"},
	{"#56B6C2", "Teal"},
	{"#98C379", "Green"},
	{"#C678DD", "Violet"},
	{"#E5C07B", "Sand"},
	{"#ABB2BF", "Silver"},
	{"#3E4451", "Slate"},
	{"#1E2127", "Night"},
}

// Winning line colours (warm tones that stand out against the cells)
var highlightColors = []namedColor{
	{"#D19A66", "Amber"},
	{"#E06C75", "Coral"},
	{"#E5C07B", "Gold"},
	{"#BE5046", "Brick"},
	{"#98C379", "Lime"},
	{"#FFFFFF", "White"},
}

// ColorConfigUI provides a colour configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	log       *slog.Logger
	onDone    func()

	// Current selection
	selectedCell      string
	selectedHighlight string
	editingHighlight  bool // true = editing highlight colour, false = editing cell colour
}

// NewColorConfig creates a new colour configuration screen.
func NewColorConfig(cfg *config.Config, log *slog.Logger, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:               cfg,
		log:               log.With("component", "colors"),
		onDone:            onDone,
		selectedCell:      cfg.Theme.Colors.Cell,
		selectedHighlight: cfg.Theme.Colors.Highlight,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Preview the colour under the cursor
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.preselect(index)
	})

	// Apply on Enter
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.Select(index)
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) palette() []namedColor {
	if cc.editingHighlight {
		return highlightColors
	}
	return cellColors
}

func (cc *ColorConfigUI) preselect(index int) {
	colors := cc.palette()
	if index < 0 || index >= len(colors) {
		return
	}
	if cc.editingHighlight {
		cc.selectedHighlight = colors[index].value
	} else {
		cc.selectedCell = colors[index].value
	}
}

// Select picks the colour at index. Choosing a cell colour moves on to the
// highlight colour. Choosing the highlight colour applies both, saves and
// leaves.
func (cc *ColorConfigUI) Select(index int) {
	colors := cc.palette()
	if index < 0 || index >= len(colors) {
		return
	}
	cc.preselect(index)
	if !cc.editingHighlight {
		cc.editingHighlight = true
		cc.populateColorList()
		return
	}

	cc.cfg.Theme.Colors.Cell = cc.selectedCell
	cc.cfg.Theme.Colors.Highlight = cc.selectedHighlight
	if err := cc.cfg.Save(); err != nil {
		cc.log.Error("could not save colours", "error", err)
	}
	cc.editingHighlight = false
	cc.populateColorList()
	if cc.onDone != nil {
		cc.onDone()
	}
}

// populateColorList fills the list with the palette for the current mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedCell
	if cc.editingHighlight {
		cc.colorList.SetTitle(" Winning Line Colour (Tab: cells) ")
		current = cc.selectedHighlight
	} else {
		cc.colorList.SetTitle(" Cell Colour (Tab: winning line) ")
	}

	for i, c := range cc.palette() {
		cc.colorList.AddItem(fmt.Sprintf("%s████[-] %s", colorTag(config.ParseColor(c.value)), c.name),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.palette() {
		if config.ParseColor(c.value) == config.ParseColor(current) {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < gridWidth+2 || height < gridHeight+3 {
		return x, y, width, height
	}

	// Sample position with a finished top row
	var board types.Board
	board[0] = [types.Size]types.Mark{types.X, types.X, types.X}
	board[1][0], board[1][1] = types.O, types.O

	bg := config.ParseColor(cc.cfg.Theme.Colors.Background)
	cell := tcell.StyleDefault.Background(config.ParseColor(cc.selectedCell))
	lit := tcell.StyleDefault.Background(config.ParseColor(cc.selectedHighlight))
	lineStyle := tcell.StyleDefault.Background(bg).Foreground(config.ParseColor(cc.cfg.Theme.Colors.Line))
	l := boardLayout{left: x + 1, top: y + 1}

	for row := 0; row < types.Size; row++ {
		for col := 0; col < types.Size; col++ {
			pos := types.Pos{Row: row, Col: col}
			style := cell
			if row == 0 {
				style = lit
			}
			cx, cy := l.cellOrigin(pos)
			for dy := 0; dy < cellHeight; dy++ {
				for dx := 0; dx < cellWidth; dx++ {
					screen.SetContent(cx+dx, cy+dy, ' ', nil, style)
				}
				if col < types.Size-1 {
					screen.SetContent(cx+cellWidth, cy+dy, '│', nil, lineStyle)
				}
			}
			if row < types.Size-1 {
				for dx := 0; dx <= cellWidth; dx++ {
					screen.SetContent(cx+dx, cy+cellHeight, '─', nil, lineStyle)
				}
			}
			switch board.At(pos) {
			case types.X:
				fg := config.ParseColor(cc.cfg.Theme.Colors.X)
				screen.SetContent(cx+cellWidth/2, cy+cellHeight/2, cc.cfg.Theme.Symbols.X, nil, style.Foreground(fg).Bold(true))
			case types.O:
				fg := config.ParseColor(cc.cfg.Theme.Colors.O)
				screen.SetContent(cx+cellWidth/2, cy+cellHeight/2, cc.cfg.Theme.Symbols.O, nil, style.Foreground(fg).Bold(true))
			}
		}
	}

	info := fmt.Sprintf("Cells: %s  Line: %s", cc.selectedCell, cc.selectedHighlight)
	drawText(screen, l.left, l.top+gridHeight+1, info, tcell.StyleDefault)

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the colour list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// Cancel drops unsaved choices and returns to cell colour editing. The
// config is left as it was.
func (cc *ColorConfigUI) Cancel() {
	cc.selectedCell = cc.cfg.Theme.Colors.Cell
	cc.selectedHighlight = cc.cfg.Theme.Colors.Highlight
	cc.editingHighlight = false
	cc.populateColorList()
}

// ToggleMode switches between cell and highlight colour editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingHighlight = !cc.editingHighlight
	cc.populateColorList()
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
