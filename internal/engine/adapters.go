package engine

import "go-soko/internal/board"

// Message selects one of the fixed status strings shown after a rejected move.
type Message int

const (
	MsgWall Message = iota
	MsgBoxWall
	MsgBoxBox
	MsgWallDiagonal
	MsgBoxDiagonal
)

var messageNames = [...]string{
	MsgWall:         "wall",
	MsgBoxWall:      "box_wall",
	MsgBoxBox:       "box_box",
	MsgWallDiagonal: "wall_diagonal",
	MsgBoxDiagonal:  "box_diagonal",
}

func (m Message) String() string {
	if m < 0 || int(m) >= len(messageNames) {
		return "unknown"
	}
	return messageNames[m]
}

// Display renders board cells. It is called once per changed cell.
type Display interface {
	PaintCell(row, col int, c board.Cell)
	PaintPlayer(row, col int)
}

// Resizer is implemented by displays whose size follows the loaded level.
type Resizer interface {
	Resize(rows, cols int)
}

// Messenger shows short status messages.
type Messenger interface {
	ShowMessage(m Message)
	ClearMessage()
}

// Mirror is an optional secondary text rendering of the board.
type Mirror interface {
	DrawBoard(b *board.Board)
	RedrawRow(b *board.Board, row int)
}

type nopDisplay struct{}

func (nopDisplay) PaintCell(int, int, board.Cell) {}
func (nopDisplay) PaintPlayer(int, int)           {}

type nopMessenger struct{}

func (nopMessenger) ShowMessage(Message) {}
func (nopMessenger) ClearMessage()       {}

type nopMirror struct{}

func (nopMirror) DrawBoard(*board.Board)      {}
func (nopMirror) RedrawRow(*board.Board, int) {}
