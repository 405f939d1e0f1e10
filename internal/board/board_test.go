package board

import "testing"

func TestBoard_Wrap(t *testing.T) {
	b := New(DefaultRows, DefaultCols)

	tests := []struct {
		row, col int
		want     Position
	}{
		{0, 0, Position{0, 0}},
		{-1, 0, Position{7, 0}},
		{8, 0, Position{0, 0}},
		{3, 16, Position{3, 0}},
		{3, -1, Position{3, 15}},
		{-9, -17, Position{7, 15}},
	}

	for _, tt := range tests {
		if got := b.Wrap(tt.row, tt.col); got != tt.want {
			t.Errorf("Wrap(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestBoard_SolvedTracksOpenTargets(t *testing.T) {
	b := New(2, 3)
	if !b.Solved() {
		t.Error("a board without targets is solved")
	}

	b.Set(Position{0, 1}, Target)
	if b.Solved() {
		t.Error("one bare target should leave the board unsolved")
	}
	if b.OpenTargets() != 1 {
		t.Errorf("expected 1 open target, got %d", b.OpenTargets())
	}

	b.Set(Position{0, 1}, Box|Target)
	if !b.Solved() {
		t.Error("covering the last target should solve the board")
	}
}

func TestBoard_SetRejectsInvalidCell(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for wall combined with box")
		}
	}()
	New(1, 1).Set(Position{0, 0}, Wall|Box)
}

func TestBoard_CloneIsIndependent(t *testing.T) {
	b := New(2, 2)
	c := b.Clone()
	c.Set(Position{1, 1}, Box)

	if b.Equal(c) {
		t.Error("clone should not share cells with the original")
	}
	if b.At(Position{1, 1}) != Room {
		t.Error("original modified through clone")
	}
}

func TestBoard_Row(t *testing.T) {
	b := New(2, 3)
	b.Set(Position{1, 2}, Wall)

	row := b.Row(1)
	if len(row) != 3 || row[2] != Wall {
		t.Errorf("unexpected row contents %v", row)
	}
	row[0] = Box
	if b.At(Position{1, 0}) != Room {
		t.Error("Row should return a copy")
	}
}
