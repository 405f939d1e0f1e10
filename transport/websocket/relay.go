package websocket

import (
	"go-soko/internal/board"
	"go-soko/internal/display"
	"go-soko/internal/engine"
)

// Relay publishes engine display and message calls to a Hub.
type Relay struct {
	hub     *Hub
	palette display.Palette
}

func NewRelay(hub *Hub, palette display.Palette) *Relay {
	return &Relay{hub: hub, palette: palette}
}

func (r *Relay) Resize(rows, cols int) {
	r.hub.Publish(Event{Event: EventResize, Rows: rows, Cols: cols})
}

func (r *Relay) PaintCell(row, col int, c board.Cell) {
	r.hub.Publish(Event{
		Event: EventPaint,
		Row:   row,
		Col:   col,
		Cell:  c.String(),
		Color: r.palette.ForCell(c).Hex(),
	})
}

func (r *Relay) PaintPlayer(row, col int) {
	r.hub.Publish(Event{
		Event: EventPlayer,
		Row:   row,
		Col:   col,
		Cell:  "player",
		Color: r.palette.Player.Hex(),
	})
}

func (r *Relay) ShowMessage(m engine.Message) {
	r.hub.Publish(Event{Event: EventMessage, Cell: m.String(), Text: display.MessageText(m, nil)})
}

func (r *Relay) ClearMessage() {
	r.hub.Publish(Event{Event: EventClear})
}

// SetText publishes free status text such as "Level complete".
func (r *Relay) SetText(text string) {
	r.hub.Publish(Event{Event: EventMessage, Text: text})
}
