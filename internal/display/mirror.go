package display

import (
	"strings"

	"github.com/muesli/termenv"

	"go-soko/internal/board"
)

// ANSI background colours used by the serial terminal board.
var mirrorColours = map[board.Cell]string{
	board.Room:               "8",  // bright black, CSI 100m
	board.Wall:               "11", // bright yellow, CSI 103m
	board.Box:                "3",  // yellow, CSI 43m
	board.Target:             "1",  // red, CSI 41m
	board.Box | board.Target: "10", // bright green, CSI 102m
}

// Mirror keeps a text rendering of the board, one line per row.
type Mirror struct {
	profile termenv.Profile
	lines   []string
}

func NewMirror(profile termenv.Profile) *Mirror {
	return &Mirror{profile: profile}
}

func (m *Mirror) DrawBoard(b *board.Board) {
	m.lines = make([]string, b.Rows())
	for row := 0; row < b.Rows(); row++ {
		m.RedrawRow(b, row)
	}
}

func (m *Mirror) RedrawRow(b *board.Board, row int) {
	if len(m.lines) != b.Rows() {
		m.lines = make([]string, b.Rows())
	}
	var sb strings.Builder
	for _, c := range b.Row(row) {
		code, ok := mirrorColours[c]
		if !ok {
			code = mirrorColours[board.Room]
		}
		sb.WriteString(m.profile.String("   ").Background(m.profile.Color(code)).String())
	}
	m.lines[row] = sb.String()
}

// Line returns the rendered board row.
func (m *Mirror) Line(row int) string {
	if row < 0 || row >= len(m.lines) {
		return ""
	}
	return m.lines[row]
}

// View renders the mirror with the top row first.
func (m *Mirror) View() string {
	out := make([]string, 0, len(m.lines))
	for row := len(m.lines) - 1; row >= 0; row-- {
		out = append(out, m.lines[row])
	}
	return strings.Join(out, "\n")
}
