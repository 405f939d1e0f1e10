// Package board holds the puzzle grid, its cell encoding and the level layouts.
package board

import "fmt"

// Default dimensions of the LED matrix the levels are drawn for.
const (
	DefaultRows = 8
	DefaultCols = 16
)

// Position is a device coordinate. Row 0 is the bottom row.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a fixed-size grid of cells.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// New returns an all-room board.
func New(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Contains reports whether p lies on the board without wrapping.
func (b *Board) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

func (b *Board) At(p Position) Cell {
	return b.cells[b.index(p)]
}

// Set stores c at p. Storing an invalid combination is a programming error.
func (b *Board) Set(p Position, c Cell) {
	if _, err := NewCell(c); err != nil {
		panic(fmt.Sprintf("board: set %s: %v", p, err))
	}
	b.cells[b.index(p)] = c
}

// Wrap maps any coordinate onto the board toroidally, the way the matrix
// addresses shifted pixels.
func (b *Board) Wrap(row, col int) Position {
	return Position{Row: modulo(row, b.rows), Col: modulo(col, b.cols)}
}

// Step returns the wrapped neighbour of p in direction (dRow, dCol).
func (b *Board) Step(p Position, dRow, dCol int) Position {
	return b.Wrap(p.Row+dRow, p.Col+dCol)
}

// Row returns a copy of one board row, column 0 first.
func (b *Board) Row(row int) []Cell {
	out := make([]Cell, b.cols)
	copy(out, b.cells[row*b.cols:(row+1)*b.cols])
	return out
}

// Each visits every cell, bottom row first.
func (b *Board) Each(fn func(p Position, c Cell)) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			fn(Position{Row: row, Col: col}, b.cells[row*b.cols+col])
		}
	}
}

// OpenTargets counts targets not covered by a box.
func (b *Board) OpenTargets() int {
	n := 0
	for _, c := range b.cells {
		if c.IsOpenTarget() {
			n++
		}
	}
	return n
}

// Solved reports whether every target is covered.
func (b *Board) Solved() bool {
	for _, c := range b.cells {
		if c.IsOpenTarget() {
			return false
		}
	}
	return true
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

func (b *Board) Equal(o *Board) bool {
	if o == nil || b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) index(p Position) int {
	if !b.Contains(p) {
		panic(fmt.Sprintf("board: position %s outside %dx%d", p, b.rows, b.cols))
	}
	return p.Row*b.cols + p.Col
}

func modulo(x, n int) int {
	return (x%n + n) % n
}
