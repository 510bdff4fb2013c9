package ui

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Cue is an audio signal for a game event.
type Cue int

const (
	CueMove Cue = iota
	CueDraw
	CueWin
)

// bellGap separates repeated bells so terminals don't merge them.
const bellGap = 150 * time.Millisecond

// bells returns how many times the terminal bell rings for a cue.
func (c Cue) bells() int {
	if c == CueWin {
		return 2
	}
	return 1
}

// Beeper rings a bell. tcell.Screen satisfies it.
type Beeper interface {
	Beep() error
}

// Sounder plays cues on a Beeper. The zero value is silent.
type Sounder struct {
	beeper  Beeper
	log     *slog.Logger
	enabled bool

	mu      sync.Mutex
	pending *Ticker
	queue   func(f func())
}

// NewSounder creates a sounder that rings b when enabled.
func NewSounder(b Beeper, enabled bool, log *slog.Logger) *Sounder {
	return &Sounder{
		beeper:  b,
		log:     log.With("component", "sound"),
		enabled: enabled,
	}
}

// SetEnabled turns the cues on or off.
func (s *Sounder) SetEnabled(enabled bool) {
	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()
}

// SetQueueUpdate sets how bells scheduled after Play returns reach the
// screen. Screens are not safe for concurrent writes, so in the app this
// posts to the UI goroutine. queue must not block: Play and Close wait for
// the bell timer. Without it those bells ring on the timer goroutine.
func (s *Sounder) SetQueueUpdate(queue func(f func())) {
	s.mu.Lock()
	s.queue = queue
	s.mu.Unlock()
}

// Enabled reports whether cues are played.
func (s *Sounder) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Play rings the bell for c and must be called on the goroutine that owns
// the screen. Extra bells are scheduled in the background so Play never
// blocks. A new cue cancels bells still pending from the last one.
func (s *Sounder) Play(c Cue) {
	if s == nil || s.beeper == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}

	s.pending.Stop()
	s.pending = nil

	s.beep()
	if extra := c.bells() - 1; extra > 0 {
		queue := s.queue
		s.pending = StartTicker(context.Background(), bellGap, extra, func(int) {
			if queue == nil {
				s.beep()
				return
			}
			queue(s.beep)
		})
	}
}

// Close cancels pending bells.
func (s *Sounder) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.pending.Stop()
	s.pending = nil
	s.mu.Unlock()
}

func (s *Sounder) beep() {
	if err := s.beeper.Beep(); err != nil && s.log != nil {
		s.log.Debug("beep failed", "error", err)
	}
}
