package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-soko/internal/board"
)

// Matrix emulates the LED matrix as a framebuffer of pixel colours.
type Matrix struct {
	rows    int
	cols    int
	pixels  []Colour
	palette Palette
}

func NewMatrix(rows, cols int, palette Palette) *Matrix {
	m := &Matrix{palette: palette}
	m.Resize(rows, cols)
	return m
}

// Resize clears the framebuffer to the given size.
func (m *Matrix) Resize(rows, cols int) {
	m.rows, m.cols = rows, cols
	m.pixels = make([]Colour, rows*cols)
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) PaintCell(row, col int, c board.Cell) {
	m.set(row, col, m.palette.ForCell(c))
}

func (m *Matrix) PaintPlayer(row, col int) {
	m.set(row, col, m.palette.Player)
}

// Pixel returns the colour at a device coordinate.
func (m *Matrix) Pixel(row, col int) Colour {
	if !m.inside(row, col) {
		return Black
	}
	return m.pixels[row*m.cols+col]
}

// View renders the framebuffer with the top row first, two terminal
// columns per pixel.
func (m *Matrix) View() string {
	var sb strings.Builder
	for row := m.rows - 1; row >= 0; row-- {
		for col := 0; col < m.cols; col++ {
			style := lipgloss.NewStyle().Background(m.Pixel(row, col).Lipgloss())
			sb.WriteString(style.Render("  "))
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m *Matrix) set(row, col int, c Colour) {
	if !m.inside(row, col) {
		return
	}
	m.pixels[row*m.cols+col] = c
}

func (m *Matrix) inside(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}
