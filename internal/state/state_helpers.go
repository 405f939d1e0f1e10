package state

import (
	"time"

	"go-soko/internal/display"
)

// Clock supplies a millisecond timestamp that never goes backwards.
type Clock interface {
	NowMs() int64
}

type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMs uses the monotonic reading carried by time.Time.
func (c *SystemClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

type Buzzer interface {
	Play(t display.Tone)
	Toggle() bool
}

// Status shows free text such as "Level complete" under the board.
type Status interface {
	SetText(text string)
}

type nopBuzzer struct{}

func (nopBuzzer) Play(display.Tone) {}
func (nopBuzzer) Toggle() bool      { return false }

type nopStatus struct{}

func (nopStatus) SetText(string) {}

func (s *State) begin() {
	now := s.Clock.NowMs()
	s.startedMs = now
	s.lastPlayerMs = now
	s.lastTargetsMs = now
	s.Steps = 0
	s.Elapsed = 0
	s.Buzzer.Play(display.ToneStart)
}

func (s *State) win() {
	s.Win = true
	s.Buzzer.Play(display.ToneWin)
	s.Status.SetText("Level complete")
}

// flash toggles the player and the open targets once their periods pass.
func (s *State) flash(now int64) {
	if now-s.lastPlayerMs >= PlayerFlashMs {
		s.Engine.FlashPlayer()
		s.lastPlayerMs = now
	}
	if now-s.lastTargetsMs >= TargetFlashMs {
		s.Engine.FlashTargets()
		s.lastTargetsMs = now
	}
	s.Elapsed = s.elapsedSeconds(now)
}

func (s *State) elapsedSeconds(now int64) int {
	if now < s.startedMs {
		return 0
	}
	return int((now - s.startedMs) / 1000)
}

func (s *State) IsGameOver() bool {
	return s.Win || s.Quit
}

func (s *State) Current() string {
	return s.FSM.Current()
}
