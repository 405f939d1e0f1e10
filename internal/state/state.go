package state

import (
	"context"
	"log"

	"github.com/looplab/fsm"

	"go-soko/internal/display"
	"go-soko/internal/engine"
	"go-soko/internal/input"
	"go-soko/internal/scoring"
)

// Flash periods in milliseconds.
const (
	PlayerFlashMs int64 = 200
	TargetFlashMs int64 = 500
)

type State struct {
	Engine *engine.Engine
	Score  *scoring.Scoring
	FSM    *fsm.FSM

	Clock  Clock
	Buzzer Buzzer
	Status Status

	Action   input.Action // Action being processed
	Steps    int          // Accepted moves since the level was (re)started
	Win      bool
	Quit     bool
	ShowHelp bool
	Elapsed  int // Whole seconds since the level started

	startedMs     int64
	lastPlayerMs  int64
	lastTargetsMs int64
}

func NewState(eng *engine.Engine, score *scoring.Scoring, clock Clock, buzzer Buzzer, status Status) *State {
	if clock == nil {
		clock = NewSystemClock()
	}
	if buzzer == nil {
		buzzer = nopBuzzer{}
	}
	if status == nil {
		status = nopStatus{}
	}
	s := &State{
		Engine: eng,
		Score:  score,
		Clock:  clock,
		Buzzer: buzzer,
		Status: status,
	}

	s.FSM = fsm.NewFSM(
		"start",
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "initGame", Src: []string{"start"}, Dst: "idle"},
		{Name: "input", Src: []string{"idle"}, Dst: "checkGameState"},

		// Dispatch on the resolved action
		{Name: "gameEnd", Src: []string{"idle", "checkGameState", "evaluating"}, Dst: "endState"},
		{Name: "proceed", Src: []string{"checkGameState"}, Dst: "processMove"},
		{Name: "undo", Src: []string{"checkGameState"}, Dst: "undoing"},
		{Name: "restart", Src: []string{"checkGameState"}, Dst: "restarting"},

		// Engine results
		{Name: "accepted", Src: []string{"processMove", "undoing", "restarting"}, Dst: "updateScore"},
		{Name: "rejected", Src: []string{"processMove", "undoing"}, Dst: "updateScore"},
		{Name: "scoreCalculated", Src: []string{"updateScore"}, Dst: "evaluating"},

		// End loop
		{Name: "wait", Src: []string{"evaluating", "checkGameState"}, Dst: "idle"},
		{Name: "tick", Src: []string{"idle"}, Dst: "timeCheck"},
		{Name: "timePassed", Src: []string{"timeCheck"}, Dst: "idle"},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_idle": func(ctx context.Context, e *fsm.Event) {
			if e.Event != "initGame" {
				return
			}
			s.begin()
			// A layout can start with every box already home
			if s.Engine.IsGameOver() {
				s.win()
				e.FSM.Event(ctx, "gameEnd")
			}
		},
		"enter_timeCheck": func(ctx context.Context, e *fsm.Event) {
			s.flash(s.Clock.NowMs())
			e.FSM.Event(ctx, "timePassed")
		},
		"enter_checkGameState": func(ctx context.Context, e *fsm.Event) {
			s.Action = input.Action{}
			if len(e.Args) > 0 {
				if a, ok := e.Args[0].(input.Action); ok {
					s.Action = a
				}
			}

			switch s.Action.Kind {
			case input.Quit:
				s.Quit = true
				e.FSM.Event(ctx, "gameEnd")
			case input.Move:
				e.FSM.Event(ctx, "proceed")
			case input.Undo:
				e.FSM.Event(ctx, "undo")
			case input.Restart:
				e.FSM.Event(ctx, "restart")
			case input.Mute:
				if s.Buzzer.Toggle() {
					s.Status.SetText("Sound on")
				} else {
					s.Status.SetText("Sound off")
				}
				e.FSM.Event(ctx, "wait")
			case input.Help:
				s.ShowHelp = !s.ShowHelp
				e.FSM.Event(ctx, "wait")
			default:
				e.FSM.Event(ctx, "wait")
			}
		},
		"enter_processMove": func(ctx context.Context, e *fsm.Event) {
			if !s.Engine.Move(s.Action.Dir) {
				s.Score.ScoreEvent(scoring.Blocked)
				s.Buzzer.Play(display.ToneBlocked)
				e.FSM.Event(ctx, "rejected")
				return
			}
			s.Steps++
			s.Score.ScoreEvent(scoring.Step)
			if s.Engine.LastPush().Moved {
				s.Score.ScoreEvent(scoring.Push)
			}
			s.lastPlayerMs = s.Clock.NowMs()
			s.Buzzer.Play(display.ToneMove)
			e.FSM.Event(ctx, "accepted")
		},
		"enter_undoing": func(ctx context.Context, e *fsm.Event) {
			if !s.Engine.UndoMove() {
				s.Buzzer.Play(display.ToneBlocked)
				e.FSM.Event(ctx, "rejected")
				return
			}
			s.Score.ScoreEvent(scoring.Undo)
			s.lastPlayerMs = s.Clock.NowMs()
			s.Buzzer.Play(display.ToneMove)
			e.FSM.Event(ctx, "accepted")
		},
		"enter_restarting": func(ctx context.Context, e *fsm.Event) {
			if err := s.Engine.LoadLevel(s.Engine.Level()); err != nil {
				log.Printf("restart level %d: %v", s.Engine.Level(), err)
			}
			s.Steps = 0
			s.Score.ScoreEvent(scoring.Restart)
			s.Status.SetText("Level restarted")
			e.FSM.Event(ctx, "accepted")
		},
		"enter_updateScore": func(ctx context.Context, e *fsm.Event) {
			s.Elapsed = s.elapsedSeconds(s.Clock.NowMs())
			s.Score.SetElapsed(s.Elapsed)
			e.FSM.Event(ctx, "scoreCalculated")
		},
		"enter_evaluating": func(ctx context.Context, e *fsm.Event) {
			if s.Engine.IsGameOver() {
				s.win()
				e.FSM.Event(ctx, "gameEnd")
				return
			}
			e.FSM.Event(ctx, "wait")
		},
		"enter_endState": func(ctx context.Context, e *fsm.Event) {
			if !s.Win {
				return
			}
			if err := s.Score.SaveEntries(); err != nil {
				log.Printf("save scores: %v", err)
			}
		},
	}
}
