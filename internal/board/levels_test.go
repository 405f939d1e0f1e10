package board

import (
	"errors"
	"testing"
)

func TestParseLayout_FlipsIntoDeviceRows(t *testing.T) {
	l, err := ParseLayout("; Tiny\n#.#\n-@$\n*--\n")
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}

	if l.Name != "Tiny" {
		t.Errorf("expected name 'Tiny', got %q", l.Name)
	}
	if l.Start != (Position{Row: 1, Col: 1}) {
		t.Errorf("expected start (1,1), got %v", l.Start)
	}

	b := l.Build()
	// The template's top row becomes device row 2.
	if b.At(Position{2, 0}) != Wall || b.At(Position{2, 1}) != Target {
		t.Errorf("top row not flipped: %v", b.Row(2))
	}
	if b.At(Position{0, 0}) != Box|Target {
		t.Errorf("bottom row not flipped: %v", b.Row(0))
	}
	if b.At(Position{1, 2}) != Box {
		t.Errorf("expected box at (1,2), got %s", b.At(Position{1, 2}))
	}
}

func TestParseLayout_PadsShortRows(t *testing.T) {
	l, err := ParseLayout("####\n#@.\n#$")
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}
	if l.Cols() != 4 || l.Rows() != 3 {
		t.Fatalf("expected 3x4, got %dx%d", l.Rows(), l.Cols())
	}
	if l.Cells[2][3] != Room {
		t.Errorf("padding should be room, got %s", l.Cells[2][3])
	}
}

func TestParseLayout_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":         "\n\n",
		"no player":     "#.$#",
		"two players":   "@.$@",
		"no target":     "@$",
		"too few boxes": "@..$",
		"bad glyph":     "@.$x",
	}

	for name, text := range tests {
		if _, err := ParseLayout(text); !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("%s: expected ErrInvalidLayout, got %v", name, err)
		}
	}
}

func TestLayout_TextRoundTrip(t *testing.T) {
	for _, l := range Levels() {
		again, err := ParseLayout(l.Text())
		if err != nil {
			t.Fatalf("%s: reparse failed: %v", l.Name, err)
		}
		if !l.Build().Equal(again.Build()) || l.Start != again.Start || l.Name != again.Name {
			t.Errorf("%s: text form did not round trip", l.Name)
		}
	}
}

func TestLevels_Builtin(t *testing.T) {
	levels := Levels()
	if len(levels) != 2 {
		t.Fatalf("expected 2 built-in levels, got %d", len(levels))
	}

	first := levels[0]
	if first.Rows() != DefaultRows || first.Cols() != DefaultCols {
		t.Errorf("level 1 should be %dx%d, got %dx%d", DefaultRows, DefaultCols, first.Rows(), first.Cols())
	}
	if first.Start != (Position{Row: 5, Col: 2}) {
		t.Errorf("level 1 should start at (5,2), got %v", first.Start)
	}

	b := first.Build()
	if b.OpenTargets() != 5 {
		t.Errorf("level 1 should have 5 open targets, got %d", b.OpenTargets())
	}
	// Template row 1 col 9 holds a box; it lands on device row 6.
	if b.At(Position{6, 9}) != Box {
		t.Errorf("expected box at (6,9), got %s", b.At(Position{6, 9}))
	}
}
