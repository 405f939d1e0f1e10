package display

import (
	"math/rand/v2"

	"go-soko/internal/engine"
)

var wallMessages = []string{
	"Player hit a wall",
	"Wall hit",
	"There is a wall in the way",
}

var fixedMessages = map[engine.Message]string{
	engine.MsgBoxWall:      "Cannot push box onto wall",
	engine.MsgBoxBox:       "Cannot stack boxes",
	engine.MsgWallDiagonal: "Diagonal move blocked by a wall",
	engine.MsgBoxDiagonal:  "Diagonal move blocked by a box",
}

// StatusLine holds the single message shown beneath the board.
type StatusLine struct {
	text string
	pick func(n int) int
}

func NewStatusLine() *StatusLine {
	return &StatusLine{pick: rand.IntN}
}

// NewStatusLineWithPicker uses pick to choose among the wall messages.
func NewStatusLineWithPicker(pick func(n int) int) *StatusLine {
	return &StatusLine{pick: pick}
}

func (s *StatusLine) ShowMessage(m engine.Message) {
	s.text = MessageText(m, s.pick)
}

func (s *StatusLine) ClearMessage() { s.text = "" }

// SetText replaces the line with free text, e.g. "Level complete".
func (s *StatusLine) SetText(text string) { s.text = text }

func (s *StatusLine) Text() string { return s.text }

// MessageText returns the display text for m. pick selects one of the
// wall variants and may be nil.
func MessageText(m engine.Message, pick func(n int) int) string {
	if m == engine.MsgWall {
		i := 0
		if pick != nil {
			i = pick(len(wallMessages))
		}
		if i < 0 || i >= len(wallMessages) {
			i = 0
		}
		return wallMessages[i]
	}
	if text, ok := fixedMessages[m]; ok {
		return text
	}
	return m.String()
}
