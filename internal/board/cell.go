package board

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the content of one grid location, stored as a bitmask.
type Cell uint8

const (
	Room   Cell = 0
	Wall   Cell = 1 << 0
	Box    Cell = 1 << 1
	Target Cell = 1 << 2

	objectMask = Wall | Box | Target
)

var ErrInvalidCell = errors.New("invalid cell")

// NewCell validates a flag combination. A wall never shares a cell with a
// box or a target, and no bits outside the object mask may be set.
func NewCell(flags Cell) (Cell, error) {
	if flags&^objectMask != 0 {
		return Room, fmt.Errorf("%w: unknown bits %#x", ErrInvalidCell, uint8(flags&^objectMask))
	}
	if flags&Wall != 0 && flags != Wall {
		return Room, fmt.Errorf("%w: wall combined with %s", ErrInvalidCell, flags&^Wall)
	}
	return flags, nil
}

func (c Cell) IsWall() bool    { return c&Wall != 0 }
func (c Cell) HasBox() bool    { return c&Box != 0 }
func (c Cell) HasTarget() bool { return c&Target != 0 }

// IsOpenTarget reports a target that no box is covering.
func (c Cell) IsOpenTarget() bool {
	return c&(Target|Box) == Target
}

// Blocked reports whether a player can never step onto the cell without pushing.
func (c Cell) Blocked() bool {
	return c&(Wall|Box) != 0
}

func (c Cell) String() string {
	if c == Room {
		return "room"
	}
	var parts []string
	if c&Wall != 0 {
		parts = append(parts, "wall")
	}
	if c&Box != 0 {
		parts = append(parts, "box")
	}
	if c&Target != 0 {
		parts = append(parts, "target")
	}
	if c&^objectMask != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint8(c&^objectMask)))
	}
	return strings.Join(parts, "|")
}
