package game

import (
	"fmt"

	"go-soko/internal/board"
	"go-soko/internal/engine"
	"go-soko/internal/scoring"
	"go-soko/internal/state"
)

// Options wires the adapters shared by every level of a session.
type Options struct {
	Display     engine.Display
	Messages    engine.Messenger
	Mirror      engine.Mirror
	HistorySize int

	Clock  state.Clock
	Buzzer state.Buzzer
	Status state.Status
}

type Session struct {
	Levels       []board.Layout
	CurrentIndex int
	CurrentGame  *Game
	Engine       *engine.Engine
	ScoreStorage scoring.ScoreStorage
	Options      Options

	// Aggregate State
	TotalSteps  int
	TotalPushes int
	Solved      int
}

// NewSession starts playing levels[start].
func NewSession(levels []board.Layout, start int, storage scoring.ScoreStorage, opts Options) (*Session, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels to play")
	}
	if start < 0 || start >= len(levels) {
		return nil, fmt.Errorf("%w: %d (have %d)", engine.ErrUnknownLevel, start, len(levels))
	}
	if opts.Clock == nil {
		opts.Clock = state.NewSystemClock()
	}

	s := &Session{
		Levels:       levels,
		CurrentIndex: start,
		ScoreStorage: storage,
		Options:      opts,
		Engine: engine.New(engine.Config{
			Levels:      levels,
			Display:     opts.Display,
			Messages:    opts.Messages,
			Mirror:      opts.Mirror,
			HistorySize: opts.HistorySize,
		}),
	}

	if err := s.NextGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// NextGame loads the level at CurrentIndex and starts a fresh game on it.
func (s *Session) NextGame() error {
	if s.CurrentIndex >= len(s.Levels) {
		return fmt.Errorf("no more levels")
	}
	if err := s.Engine.LoadLevel(s.CurrentIndex); err != nil {
		return fmt.Errorf("could not load level: %w", err)
	}

	sc, err := scoring.InitScoring(s.Engine.Layout().Text(), s.Title(), s.ScoreStorage)
	if err != nil {
		return err
	}

	g := NewGame(s.Engine, sc, s.Options.Clock, s.Options.Buzzer, s.Options.Status)
	g.Init()

	s.CurrentGame = g
	return nil
}

// Update advances to the next level once the current one is solved.
func (s *Session) Update() error {
	if s.CurrentGame == nil || !s.CurrentGame.State.Win {
		return nil
	}

	s.TotalSteps += s.CurrentGame.State.Steps
	s.TotalPushes += s.CurrentGame.State.Score.Pushes
	s.Solved++
	s.CurrentIndex++
	if s.IsFinished() {
		return nil
	}
	return s.NextGame()
}

// Title names the current level.
func (s *Session) Title() string {
	if s.CurrentIndex >= len(s.Levels) {
		return ""
	}
	if name := s.Levels[s.CurrentIndex].Name; name != "" {
		return name
	}
	return fmt.Sprintf("Level %d", s.CurrentIndex+1)
}

func (s *Session) IsFinished() bool {
	return s.CurrentIndex >= len(s.Levels)
}

func (s *Session) IsQuit() bool {
	return s.CurrentGame != nil && s.CurrentGame.State.Quit
}
