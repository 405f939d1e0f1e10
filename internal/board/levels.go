package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout is an immutable level template. Cells are stored as drawn, top row
// first; Start is already in device coordinates.
type Layout struct {
	Name  string
	Cells [][]Cell
	Start Position
}

// Rows and Cols give the size of the board the layout builds.
func (l Layout) Rows() int { return len(l.Cells) }
func (l Layout) Cols() int {
	if len(l.Cells) == 0 {
		return 0
	}
	return len(l.Cells[0])
}

// Build returns a fresh board with the template flipped vertically so the
// template's last row becomes device row 0.
func (l Layout) Build() *Board {
	rows, cols := l.Rows(), l.Cols()
	b := New(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			b.Set(Position{Row: rows - 1 - row, Col: col}, l.Cells[row][col])
		}
	}
	return b
}

// Text renders the layout in the same notation ParseLayout reads.
func (l Layout) Text() string {
	var sb strings.Builder
	if l.Name != "" {
		sb.WriteString("; " + l.Name + "\n")
	}
	rows := l.Rows()
	for row, line := range l.Cells {
		for col, c := range line {
			player := rows-1-row == l.Start.Row && col == l.Start.Col
			sb.WriteByte(glyph(c, player))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseLayout reads a level in the usual Sokoban text notation:
//
//	#  wall        $  box           .  target
//	*  box+target  @  player        +  player on target
//	-, _ or space  room
//
// Lines starting with ';' are comments; the first one names the level.
// Short rows are padded with room.
func ParseLayout(text string) (Layout, error) {
	var l Layout
	var rows []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(line, ";") {
			if l.Name == "" {
				l.Name = strings.TrimSpace(strings.TrimPrefix(line, ";"))
			}
			continue
		}
		if strings.TrimSpace(line) == "" && len(rows) == 0 {
			continue
		}
		rows = append(rows, strings.TrimRight(line, " \t"))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Layout{}, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}

	players, boxes, targets := 0, 0, 0
	l.Cells = make([][]Cell, len(rows))
	for row, r := range rows {
		l.Cells[row] = make([]Cell, cols)
		for col := 0; col < len(r); col++ {
			c, player, ok := parseGlyph(r[col])
			if !ok {
				return Layout{}, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrInvalidLayout, r[col], row, col)
			}
			if player {
				players++
				l.Start = Position{Row: len(rows) - 1 - row, Col: col}
			}
			if c.HasBox() {
				boxes++
			}
			if c.HasTarget() {
				targets++
			}
			l.Cells[row][col] = c
		}
	}

	switch {
	case players != 1:
		return Layout{}, fmt.Errorf("%w: want exactly one player, found %d", ErrInvalidLayout, players)
	case targets == 0:
		return Layout{}, fmt.Errorf("%w: no targets", ErrInvalidLayout)
	case boxes < targets:
		return Layout{}, fmt.Errorf("%w: %d boxes cannot cover %d targets", ErrInvalidLayout, boxes, targets)
	}
	return l, nil
}

// MustParseLayout is ParseLayout for compiled-in levels.
func MustParseLayout(text string) Layout {
	l, err := ParseLayout(text)
	if err != nil {
		panic(err)
	}
	return l
}

func parseGlyph(ch byte) (c Cell, player bool, ok bool) {
	switch ch {
	case '-', '_', ' ':
		return Room, false, true
	case '#':
		return Wall, false, true
	case '$':
		return Box, false, true
	case '.':
		return Target, false, true
	case '*':
		return Box | Target, false, true
	case '@':
		return Room, true, true
	case '+':
		return Target, true, true
	}
	return Room, false, false
}

func glyph(c Cell, player bool) byte {
	switch {
	case player && c.HasTarget():
		return '+'
	case player:
		return '@'
	case c == Wall:
		return '#'
	case c == Box|Target:
		return '*'
	case c == Box:
		return '$'
	case c == Target:
		return '.'
	}
	return '-'
}

// Levels returns the compiled-in layouts in play order.
func Levels() []Layout {
	return []Layout{
		MustParseLayout(levelOne),
		MustParseLayout(levelTwo),
	}
}

const levelOne = `; Level 1
-#-###-###--####
-#.#--#.-$----.#
--@-------------
#-$----#--$--$-#
#---#-$---------
------.---------
---######.-----#
##------##--####
`

const levelTwo = `; Level 2
################
#----#----#----#
#-$--.--@-.--$-#
#----#----#----#
##-####--####-##
#---.-$--$-.---#
#--------------#
################
`
