package board

import (
	"errors"
	"testing"
)

func TestNewCell(t *testing.T) {
	tests := []struct {
		flags   Cell
		wantErr bool
	}{
		{Room, false},
		{Wall, false},
		{Box, false},
		{Target, false},
		{Box | Target, false},
		{Wall | Box, true},
		{Wall | Target, true},
		{Wall | Box | Target, true},
		{Cell(0x08), true},
	}

	for _, tt := range tests {
		got, err := NewCell(tt.flags)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCell) {
				t.Errorf("NewCell(%s) error = %v, want ErrInvalidCell", tt.flags, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewCell(%s) unexpected error: %v", tt.flags, err)
		}
		if got != tt.flags {
			t.Errorf("NewCell(%s) = %s", tt.flags, got)
		}
	}
}

func TestCell_Predicates(t *testing.T) {
	if !Target.IsOpenTarget() {
		t.Error("bare target should be open")
	}
	if (Box | Target).IsOpenTarget() {
		t.Error("covered target should not be open")
	}
	if !Box.Blocked() || !Wall.Blocked() || !(Box | Target).Blocked() {
		t.Error("walls and boxes should block")
	}
	if Room.Blocked() || Target.Blocked() {
		t.Error("room and target should not block")
	}
}

func TestCell_String(t *testing.T) {
	if got := (Box | Target).String(); got != "box|target" {
		t.Errorf("expected 'box|target', got %q", got)
	}
	if got := Room.String(); got != "room" {
		t.Errorf("expected 'room', got %q", got)
	}
}
