// Package display provides the adapters the engine draws through: an
// emulated bicolour LED matrix, a text mirror of the board, the status
// message line, the buzzer, and fan-outs that feed several of them at once.
package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go-soko/internal/board"
)

// Colour is a matrix pixel: green intensity in the high nibble, red in the low.
type Colour uint8

const (
	Black       Colour = 0x00
	Red         Colour = 0x0F
	LightGreen  Colour = 0x11
	Green       Colour = 0xF0
	DarkGreen   Colour = 0x10
	LightYellow Colour = 0x35
	Yellow      Colour = 0xFF
	LightOrange Colour = 0x13
	Orange      Colour = 0x3C
)

func (c Colour) Green() uint8 { return uint8(c) >> 4 }
func (c Colour) Red() uint8   { return uint8(c) & 0x0F }

// Hex renders the pixel as an RGB colour; the matrix has no blue LEDs.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x00", c.Red()*17, c.Green()*17)
}

func (c Colour) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Palette maps cell contents to pixel colours.
type Palette struct {
	Room   Colour
	Wall   Colour
	Box    Colour
	Target Colour
	Done   Colour
	Player Colour
}

var DefaultPalette = Palette{
	Room:   Black,
	Wall:   Yellow,
	Box:    Orange,
	Target: Red,
	Done:   Green,
	Player: DarkGreen,
}

func (p Palette) ForCell(c board.Cell) Colour {
	switch c {
	case board.Wall:
		return p.Wall
	case board.Box:
		return p.Box
	case board.Target:
		return p.Target
	case board.Box | board.Target:
		return p.Done
	}
	return p.Room
}
