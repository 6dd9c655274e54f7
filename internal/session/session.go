package session

import (
	"fmt"

	"chance-dice/internal/dice"
	"chance-dice/internal/render"
)

// State of the roll cycle.
type State int

const (
	Idle State = iota
	Rolled
)

func (s State) String() string {
	if s == Rolled {
		return "rolled"
	}
	return "idle"
}

// Session holds the current roll and canvas size and re-renders on every
// change. It is meant to be driven from a single goroutine.
type Session struct {
	roller   *dice.Roller
	renderer *render.Renderer

	state   State
	width   float64
	height  float64
	current dice.RollResult
	frame   render.Frame
}

// New creates a session with the initial result shown before the first roll.
func New(roller *dice.Roller, renderer *render.Renderer) *Session {
	return &Session{
		roller:   roller,
		renderer: renderer,
		current:  dice.RollResult{Pitch: "C", Tuning: dice.Tuning12},
	}
}

// Roll draws a new result for the given tuning toggle value and re-renders
// it at the current size. The previous result is discarded.
func (s *Session) Roll(tuning int) (render.Frame, error) {
	res, err := s.roller.RollAll(tuning)
	if err != nil {
		return s.frame, fmt.Errorf("session: roll: %w", err)
	}

	s.current = res
	s.state = Rolled
	s.redraw()
	s.state = Idle
	return s.frame, nil
}

// Resize re-lays out the canvas and re-renders the current result without
// drawing new faces.
func (s *Session) Resize(w, h float64) render.Frame {
	s.width, s.height = w, h
	s.redraw()
	return s.frame
}

func (s *Session) redraw() {
	s.frame = s.renderer.Frame(s.width, s.height, s.current)
}

// Current returns the result on display.
func (s *Session) Current() dice.RollResult { return s.current }

// Frame returns the last rendered frame.
func (s *Session) Frame() render.Frame { return s.frame }

// State returns the session state. Rolls complete synchronously, so callers
// only ever observe Idle.
func (s *Session) State() State { return s.state }
