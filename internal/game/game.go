package game

import (
	"context"

	"go-soko/internal/engine"
	"go-soko/internal/input"
	"go-soko/internal/scoring"
	"go-soko/internal/state"
)

// Game plays one level, independent of the UI.
type Game struct {
	State *state.State
	Keys  input.KeyMap
}

func NewGame(eng *engine.Engine, score *scoring.Scoring, clock state.Clock, buzzer state.Buzzer, status state.Status) *Game {
	return &Game{
		State: state.NewState(eng, score, clock, buzzer, status),
		Keys:  input.DefaultKeyMap(),
	}
}

// Init starts the state machine. The level must already be loaded.
func (g *Game) Init() {
	_ = g.State.FSM.Event(context.Background(), "initGame")
}

// HandleTick drives the flash timers.
func (g *Game) HandleTick() {
	if g.State.IsGameOver() {
		return
	}
	_ = g.State.FSM.Event(context.Background(), "tick")
}

// HandleKeyPress resolves a key name such as "w" or "up" and plays it.
func (g *Game) HandleKeyPress(k string) {
	g.HandleAction(g.Keys.Resolve(k))
}

func (g *Game) HandleAction(a input.Action) {
	if g.State.IsGameOver() {
		return
	}
	_ = g.State.FSM.Event(context.Background(), "input", a)
}
