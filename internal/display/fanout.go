package display

import (
	"go-soko/internal/board"
	"go-soko/internal/engine"
)

// Fanout forwards every paint to each wrapped display.
type Fanout []engine.Display

func (f Fanout) PaintCell(row, col int, c board.Cell) {
	for _, d := range f {
		d.PaintCell(row, col, c)
	}
}

func (f Fanout) PaintPlayer(row, col int) {
	for _, d := range f {
		d.PaintPlayer(row, col)
	}
}

// Resize is forwarded to the displays that support it.
func (f Fanout) Resize(rows, cols int) {
	for _, d := range f {
		if r, ok := d.(engine.Resizer); ok {
			r.Resize(rows, cols)
		}
	}
}

// MessageFanout forwards status messages to each wrapped messenger.
type MessageFanout []engine.Messenger

func (f MessageFanout) ShowMessage(m engine.Message) {
	for _, s := range f {
		s.ShowMessage(m)
	}
}

func (f MessageFanout) ClearMessage() {
	for _, s := range f {
		s.ClearMessage()
	}
}

// TextSetter receives free status text.
type TextSetter interface {
	SetText(text string)
}

// TextFanout forwards status text to each wrapped setter.
type TextFanout []TextSetter

func (f TextFanout) SetText(text string) {
	for _, s := range f {
		s.SetText(text)
	}
}
