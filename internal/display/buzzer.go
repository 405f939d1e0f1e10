package display

import (
	"io"
	"log"
)

// Tone identifies one of the buzzer cues.
type Tone int

const (
	ToneStart Tone = iota
	ToneMove
	ToneBlocked
	ToneWin
)

func (t Tone) String() string {
	switch t {
	case ToneStart:
		return "start"
	case ToneMove:
		return "move"
	case ToneBlocked:
		return "blocked"
	case ToneWin:
		return "win"
	}
	return "unknown"
}

// Number of terminal bells rung per tone.
var toneBells = map[Tone]int{
	ToneStart:   1,
	ToneMove:    0,
	ToneBlocked: 1,
	ToneWin:     2,
}

// Buzzer rings the terminal bell in place of the piezo buzzer.
type Buzzer struct {
	out     io.Writer
	enabled bool
	last    Tone
	played  bool
}

func NewBuzzer(out io.Writer, enabled bool) *Buzzer {
	if out == nil {
		out = io.Discard
	}
	return &Buzzer{out: out, enabled: enabled}
}

func (b *Buzzer) Play(t Tone) {
	b.last, b.played = t, true
	if !b.enabled {
		return
	}
	for i := 0; i < toneBells[t]; i++ {
		if _, err := b.out.Write([]byte{'\a'}); err != nil {
			log.Printf("buzzer: %v", err)
			return
		}
	}
}

// Toggle flips the mute state and reports whether sound is now on.
func (b *Buzzer) Toggle() bool {
	b.enabled = !b.enabled
	return b.enabled
}

func (b *Buzzer) Enabled() bool { return b.enabled }

// Last returns the most recent tone requested, muted or not.
func (b *Buzzer) Last() (Tone, bool) {
	return b.last, b.played
}
