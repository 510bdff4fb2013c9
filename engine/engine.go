// Package engine defines the interface between the board UI and a game engine.
package engine

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"termtactoe/types"
)

// ErrRoundOver is returned when a move is attempted after the round ended.
var ErrRoundOver = errors.New("round is over")

// GameEngine defines the interface for running a match between two players.
type GameEngine interface {
	// Start begins the first round.
	Start()

	// BoardState returns the current board.
	BoardState() types.Board

	// Outcome returns the evaluation of the current board.
	Outcome() types.Outcome

	// NextMark returns the mark that moves next.
	NextMark() types.Mark

	// PlayMove places the next mover's mark at pos.
	// Returns an error if the move is rejected; the board is unchanged in that case.
	PlayMove(pos types.Pos) error

	// NewRound discards the current board and starts over. The score is kept.
	NewRound()

	// Score returns the wins per player across rounds.
	Score() Score

	// Players returns the display names for X and O.
	Players() [2]string

	// Elapsed returns how long the current round has been running.
	Elapsed() time.Duration

	// History returns the moves of the current round in order.
	History() []Move

	// OnMove registers a callback for every accepted move.
	OnMove(func(move Move, board types.Board))

	// OnGameEnd registers a callback for when a round reaches a win or a draw.
	OnGameEnd(func(outcome types.Outcome))

	// Close releases the engine.
	Close()
}

// Move is a single accepted move.
type Move struct {
	Pos    types.Pos
	Mark   types.Mark
	Number int // 1-based within the round
}

// Score counts finished rounds. X and O are the players' win counters.
type Score struct {
	X     int
	O     int
	Draws int
}

// Record adds a finished round to the score. Rounds still in progress are ignored.
func (s *Score) Record(outcome types.Outcome) {
	switch {
	case outcome.Kind == types.Win && outcome.Winner == types.X:
		s.X++
	case outcome.Kind == types.Win && outcome.Winner == types.O:
		s.O++
	case outcome.Kind == types.Draw:
		s.Draws++
	}
}

// MaxNameLength caps player names so they fit the side panel.
const MaxNameLength = 24

// GameConfig holds configuration for starting a match.
type GameConfig struct {
	PlayerX string // plays first
	PlayerO string
}

// DefaultConfig returns the configuration used when no names are given.
func DefaultConfig() GameConfig {
	return GameConfig{
		PlayerX: "Player 1",
		PlayerO: "Player 2",
	}
}

// Normalize trims names, substitutes defaults for blank ones and truncates
// long ones.
func (c GameConfig) Normalize() GameConfig {
	def := DefaultConfig()
	return GameConfig{
		PlayerX: normalizeName(c.PlayerX, def.PlayerX),
		PlayerO: normalizeName(c.PlayerO, def.PlayerO),
	}
}

// Name returns the display name of the player using mark.
func (c GameConfig) Name(mark types.Mark) string {
	if mark == types.O {
		return c.PlayerO
	}
	return c.PlayerX
}

func normalizeName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	return name
}
