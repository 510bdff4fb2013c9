// Package hotseat implements a GameEngine for two people sharing one terminal.
package hotseat

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"termtactoe/engine"
	"termtactoe/rules"
	"termtactoe/types"
)

// Engine owns one match between two named players: the current board, the
// running score and the round clock. It lives until the players return to
// the setup screen.
type Engine struct {
	config  engine.GameConfig
	log     *slog.Logger
	now     func() time.Time
	board   types.Board
	outcome types.Outcome
	score   engine.Score
	history []engine.Move
	started time.Time
	ended   time.Time

	moveCallback func(move engine.Move, board types.Board)
	endCallback  func(outcome types.Outcome)

	mu sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine for the given players. Blank names are replaced by
// the defaults.
func New(cfg engine.GameConfig, opts ...Option) *Engine {
	e := &Engine{
		config: cfg.Normalize(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("component", "hotseat")
	e.started = e.now()
	return e
}

// Start begins the first round.
func (e *Engine) Start() {
	e.mu.Lock()
	e.resetLocked()
	e.mu.Unlock()
	e.log.Info("match started", "x", e.config.PlayerX, "o", e.config.PlayerO)
}

// BoardState returns a copy of the current board.
func (e *Engine) BoardState() types.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board
}

// Outcome returns the evaluation of the current board.
func (e *Engine) Outcome() types.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.outcome
}

// NextMark returns the mark that moves next. It is derived from the board.
func (e *Engine) NextMark() types.Mark {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.NextMark()
}

// PlayMove places the next mover's mark at pos.
func (e *Engine) PlayMove(pos types.Pos) error {
	e.mu.Lock()

	if e.outcome.Terminal() {
		e.mu.Unlock()
		e.log.Debug("move rejected", "pos", pos.String(), "error", engine.ErrRoundOver)
		return engine.ErrRoundOver
	}

	mark := e.board.NextMark()
	board, err := rules.ApplyMove(e.board, pos, mark)
	if err != nil {
		e.mu.Unlock()
		e.log.Debug("move rejected", "pos", pos.String(), "mark", mark.String(), "error", err)
		return fmt.Errorf("play %s: %w", mark, err)
	}

	e.board = board
	move := engine.Move{Pos: pos, Mark: mark, Number: len(e.history) + 1}
	e.history = append(e.history, move)
	e.outcome = rules.Evaluate(board)

	outcome := e.outcome
	if outcome.Terminal() {
		e.score.Record(outcome)
		e.ended = e.now()
	}
	moveCallback := e.moveCallback
	endCallback := e.endCallback
	e.mu.Unlock()

	e.log.Debug("move played", "number", move.Number, "mark", mark.String(), "pos", pos.String(), "board", board.String())

	// Notify callbacks outside the lock so they can query the engine
	if moveCallback != nil {
		moveCallback(move, board)
	}
	if outcome.Terminal() {
		e.logRoundEnd(outcome)
		if endCallback != nil {
			endCallback(outcome)
		}
	}
	return nil
}

func (e *Engine) logRoundEnd(outcome types.Outcome) {
	score := e.Score()
	if outcome.Kind == types.Win {
		e.log.Info("round won",
			"winner", e.config.Name(outcome.Winner),
			"mark", outcome.Winner.String(),
			"line", fmt.Sprintf("%s-%s-%s", outcome.Line[0], outcome.Line[1], outcome.Line[2]),
			"score_x", score.X, "score_o", score.O)
		return
	}
	e.log.Info("round drawn", "score_x", score.X, "score_o", score.O, "draws", score.Draws)
}

// NewRound discards the board and restarts the clock. The score is kept.
func (e *Engine) NewRound() {
	e.mu.Lock()
	e.resetLocked()
	e.mu.Unlock()
	e.log.Debug("new round")
}

func (e *Engine) resetLocked() {
	e.board = types.Board{}
	e.outcome = types.Outcome{}
	e.history = nil
	e.started = e.now()
	e.ended = time.Time{}
}

// Score returns the running score.
func (e *Engine) Score() engine.Score {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// Players returns the names playing X and O.
func (e *Engine) Players() [2]string {
	return [2]string{e.config.PlayerX, e.config.PlayerO}
}

// Elapsed returns the time since the round started. The clock stops when
// the round ends.
func (e *Engine) Elapsed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ended.IsZero() {
		return e.ended.Sub(e.started)
	}
	return e.now().Sub(e.started)
}

// History returns a copy of the moves played this round.
func (e *Engine) History() []engine.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]engine.Move(nil), e.history...)
}

// OnMove registers the move callback.
func (e *Engine) OnMove(cb func(move engine.Move, board types.Board)) {
	e.mu.Lock()
	e.moveCallback = cb
	e.mu.Unlock()
}

// OnGameEnd registers the round-end callback.
func (e *Engine) OnGameEnd(cb func(outcome types.Outcome)) {
	e.mu.Lock()
	e.endCallback = cb
	e.mu.Unlock()
}

// Close drops the callbacks. The final score stays readable.
func (e *Engine) Close() {
	e.mu.Lock()
	e.moveCallback = nil
	e.endCallback = nil
	score := e.score
	e.mu.Unlock()
	e.log.Info("match closed", "score_x", score.X, "score_o", score.O, "draws", score.Draws)
}

var _ engine.GameEngine = (*Engine)(nil)
