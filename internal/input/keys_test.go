package input

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"

	"go-soko/internal/engine"
)

func TestResolve(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want Action
	}{
		{"w", Action{Kind: Move, Dir: engine.North}},
		{"up", Action{Kind: Move, Dir: engine.North}},
		{"s", Action{Kind: Move, Dir: engine.South}},
		{"down", Action{Kind: Move, Dir: engine.South}},
		{"a", Action{Kind: Move, Dir: engine.West}},
		{"left", Action{Kind: Move, Dir: engine.West}},
		{"d", Action{Kind: Move, Dir: engine.East}},
		{"right", Action{Kind: Move, Dir: engine.East}},
		{"q", Action{Kind: Move, Dir: engine.NorthWest}},
		{"e", Action{Kind: Move, Dir: engine.NorthEast}},
		{"z", Action{Kind: Move, Dir: engine.SouthWest}},
		{"c", Action{Kind: Move, Dir: engine.SouthEast}},
		{"u", Action{Kind: Undo}},
		{"r", Action{Kind: Restart}},
		{"m", Action{Kind: Mute}},
		{"?", Action{Kind: Help}},
		{"esc", Action{Kind: Quit}},
		{"ctrl+c", Action{Kind: Quit}},
		{"x", Action{Kind: None}},
		{"", Action{Kind: None}},
	}
	for _, tt := range tests {
		if got := km.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.key, got, tt.want)
		}
	}
}

func TestResolveDisabledBinding(t *testing.T) {
	km := DefaultKeyMap()
	km.Undo.SetEnabled(false)
	if got := km.Resolve("u"); got.Kind != None {
		t.Errorf("disabled undo resolved to %v", got.Kind)
	}
}

func TestHelpView(t *testing.T) {
	km := DefaultKeyMap()
	h := help.New()
	if h.View(km) == "" {
		t.Error("short help is empty")
	}
	h.ShowAll = true
	if h.View(km) == "" {
		t.Error("full help is empty")
	}
	if n := len(km.FullHelp()); n != 4 {
		t.Errorf("FullHelp has %d columns, want 4", n)
	}
}

func TestKindString(t *testing.T) {
	if Undo.String() != "undo" || Kind(99).String() != "none" {
		t.Error("unexpected kind names")
	}
}
