// Package engine implements the board-movement rules: pushing boxes,
// diagonal steps, bounded undo and win detection. All rendering goes through
// the Display, Messenger and Mirror adapters.
package engine

import (
	"errors"
	"fmt"
	"slices"

	"go-soko/internal/board"
)

var ErrUnknownLevel = errors.New("unknown level")

// Config wires an Engine. Nil adapters are replaced with no-ops.
type Config struct {
	Levels      []board.Layout
	Display     Display
	Messages    Messenger
	Mirror      Mirror
	HistorySize int
}

// Engine owns the board, the player and the paired move histories. It is
// not safe for concurrent use; a single control loop drives it.
type Engine struct {
	levels []board.Layout
	level  int

	board          *board.Board
	player         board.Position
	playerVisible  bool
	targetsVisible bool

	moves    *ring[board.Position]
	pushes   *ring[BoxMove]
	lastPush BoxMove

	display  Display
	messages Messenger
	mirror   Mirror
}

func New(cfg Config) *Engine {
	e := &Engine{
		levels:   cfg.Levels,
		moves:    newRing[board.Position](cfg.HistorySize),
		pushes:   newRing[BoxMove](cfg.HistorySize),
		display:  cfg.Display,
		messages: cfg.Messages,
		mirror:   cfg.Mirror,
	}
	if e.display == nil {
		e.display = nopDisplay{}
	}
	if e.messages == nil {
		e.messages = nopMessenger{}
	}
	if e.mirror == nil {
		e.mirror = nopMirror{}
	}
	return e
}

// LoadLevel rebuilds the board from a layout and redraws everything.
func (e *Engine) LoadLevel(index int) error {
	if index < 0 || index >= len(e.levels) {
		return fmt.Errorf("%w: %d (have %d)", ErrUnknownLevel, index, len(e.levels))
	}
	layout := e.levels[index]

	e.level = index
	e.board = layout.Build()
	e.player = layout.Start
	e.playerVisible = false
	e.targetsVisible = false
	e.moves.Clear()
	e.pushes.Clear()
	e.lastPush = noBoxMove

	if r, ok := e.display.(Resizer); ok {
		r.Resize(e.board.Rows(), e.board.Cols())
	}
	e.board.Each(func(p board.Position, c board.Cell) {
		e.display.PaintCell(p.Row, p.Col, c)
	})
	e.mirror.DrawBoard(e.board)
	return nil
}

// Move dispatches any of the eight directions. Diagonals never push.
func (e *Engine) Move(d Direction) bool {
	if !d.Valid() {
		return false
	}
	if d.Diagonal() {
		return e.MoveDiagonal(d.Split())
	}
	return e.MovePlayer(d.Delta())
}

// MovePlayer steps the player one cell in a cardinal direction, pushing a
// box if one is in the way. It returns false and leaves the board untouched
// when the move is blocked.
func (e *Engine) MovePlayer(dRow, dCol int) bool {
	if e.board == nil || !cardinal(dRow, dCol) {
		return false
	}

	from := e.player
	next := e.board.Step(from, dRow, dCol)
	push := noBoxMove

	switch target := e.board.At(next); {
	case target.IsWall():
		e.messages.ShowMessage(MsgWall)
		return false
	case target.HasBox():
		beyond := e.board.Step(next, dRow, dCol)
		switch ahead := e.board.At(beyond); {
		case ahead.IsWall():
			e.messages.ShowMessage(MsgBoxWall)
			return false
		case ahead.HasBox():
			e.messages.ShowMessage(MsgBoxBox)
			return false
		}
		push = BoxMove{From: next, To: beyond, Moved: true}
	}

	e.record(from, push)
	if push.Moved {
		e.shiftBox(push.From, push.To)
	}
	e.player = next
	e.messages.ClearMessage()
	e.repaint(from, push)
	return true
}

// MoveDiagonal moves the player through an intermediate cell, trying d1
// then d2 first and d2 then d1 second. Any wall or box on a path blocks it.
func (e *Engine) MoveDiagonal(d1, d2 Direction) bool {
	if e.board == nil || !d1.Valid() || !d2.Valid() || d1.Diagonal() || d2.Diagonal() {
		return false
	}
	r1, _ := d1.Delta()
	r2, _ := d2.Delta()
	if (r1 == 0) == (r2 == 0) {
		return false
	}

	from := e.player
	dest, blocker, ok := e.diagonalPath(from, d1, d2)
	if !ok {
		if alt, _, altOK := e.diagonalPath(from, d2, d1); altOK {
			dest, ok = alt, true
		}
	}
	if !ok {
		if blocker.IsWall() {
			e.messages.ShowMessage(MsgWallDiagonal)
		} else {
			e.messages.ShowMessage(MsgBoxDiagonal)
		}
		return false
	}

	e.record(from, noBoxMove)
	e.player = dest
	e.messages.ClearMessage()
	e.repaint(from, noBoxMove)
	return true
}

// UndoMove reverts the most recent move, including any box it pushed.
func (e *Engine) UndoMove() bool {
	if e.board == nil {
		return false
	}
	prev, ok := e.moves.Pop()
	push, pushOK := e.pushes.Pop()
	if ok != pushOK {
		panic("engine: move and box histories out of step")
	}
	if !ok {
		return false
	}

	from := e.player
	if push.Moved {
		e.shiftBox(push.To, push.From)
	}
	e.player = prev
	e.messages.ClearMessage()
	e.repaint(from, push)
	return true
}

// IsGameOver reports whether every target holds a box.
func (e *Engine) IsGameOver() bool {
	return e.board != nil && e.board.Solved()
}

// FlashPlayer toggles the player icon.
func (e *Engine) FlashPlayer() {
	if e.board == nil {
		return
	}
	e.playerVisible = !e.playerVisible
	if e.playerVisible {
		e.display.PaintPlayer(e.player.Row, e.player.Col)
	} else {
		e.display.PaintCell(e.player.Row, e.player.Col, e.board.At(e.player))
	}
}

// FlashTargets toggles every uncovered target between its colour and the
// background. The cell under the player is left alone.
func (e *Engine) FlashTargets() {
	if e.board == nil {
		return
	}
	e.targetsVisible = !e.targetsVisible
	e.board.Each(func(p board.Position, c board.Cell) {
		if !c.IsOpenTarget() || p == e.player {
			return
		}
		if e.targetsVisible {
			e.display.PaintCell(p.Row, p.Col, c)
		} else {
			e.display.PaintCell(p.Row, p.Col, board.Room)
		}
	})
}

// Board returns a copy of the current board, or nil before a level is loaded.
func (e *Engine) Board() *board.Board {
	if e.board == nil {
		return nil
	}
	return e.board.Clone()
}

func (e *Engine) Player() board.Position { return e.player }
func (e *Engine) PlayerVisible() bool     { return e.playerVisible }
func (e *Engine) TargetsVisible() bool    { return e.targetsVisible }
func (e *Engine) Level() int              { return e.level }
func (e *Engine) LevelCount() int         { return len(e.levels) }
func (e *Engine) UndoDepth() int          { return e.moves.Len() }

// LastPush is the box record of the most recent accepted move.
func (e *Engine) LastPush() BoxMove { return e.lastPush }

// Layout returns the template of the current level.
func (e *Engine) Layout() board.Layout {
	if len(e.levels) == 0 {
		return board.Layout{}
	}
	return e.levels[e.level]
}

func (e *Engine) diagonalPath(from board.Position, first, second Direction) (board.Position, board.Cell, bool) {
	r, c := first.Delta()
	mid := e.board.Step(from, r, c)
	if cell := e.board.At(mid); cell.Blocked() {
		return mid, cell, false
	}
	r, c = second.Delta()
	dest := e.board.Step(mid, r, c)
	if cell := e.board.At(dest); cell.Blocked() {
		return dest, cell, false
	}
	return dest, board.Room, true
}

func (e *Engine) record(from board.Position, push BoxMove) {
	e.moves.Push(from)
	e.pushes.Push(push)
	e.lastPush = push
	if e.moves.Len() != e.pushes.Len() {
		panic("engine: move and box histories out of step")
	}
}

func (e *Engine) shiftBox(from, to board.Position) {
	e.board.Set(from, e.board.At(from)&^board.Box)
	e.board.Set(to, e.board.At(to)|board.Box)
}

// repaint redraws the vacated cell, both ends of a box push and the player,
// then refreshes the mirror rows that changed.
func (e *Engine) repaint(vacated board.Position, push BoxMove) {
	changed := []board.Position{vacated}
	if push.Moved {
		changed = append(changed, push.From, push.To)
	}

	var painted []board.Position
	for _, p := range changed {
		if p == e.player || slices.Contains(painted, p) {
			continue
		}
		painted = append(painted, p)
		e.display.PaintCell(p.Row, p.Col, e.board.At(p))
	}
	e.playerVisible = true
	e.display.PaintPlayer(e.player.Row, e.player.Col)

	var rows []int
	for _, p := range append(painted, e.player) {
		if !slices.Contains(rows, p.Row) {
			rows = append(rows, p.Row)
			e.mirror.RedrawRow(e.board, p.Row)
		}
	}
}
