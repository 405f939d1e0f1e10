// Package input maps terminal keys to game actions.
package input

import (
	"github.com/charmbracelet/bubbles/key"

	"go-soko/internal/engine"
)

type Kind int

const (
	None Kind = iota
	Move
	Undo
	Restart
	Mute
	Help
	Quit
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Undo:
		return "undo"
	case Restart:
		return "restart"
	case Mute:
		return "mute"
	case Help:
		return "help"
	case Quit:
		return "quit"
	}
	return "none"
}

// Action is a resolved key press. Dir is only meaningful for Move.
type Action struct {
	Kind Kind
	Dir  engine.Direction
}

type KeyMap struct {
	North     key.Binding
	South     key.Binding
	West      key.Binding
	East      key.Binding
	NorthWest key.Binding
	NorthEast key.Binding
	SouthWest key.Binding
	SouthEast key.Binding
	Undo      key.Binding
	Restart   key.Binding
	Mute      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		North:     key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "north")),
		South:     key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "south")),
		West:      key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "west")),
		East:      key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "east")),
		NorthWest: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "north-west")),
		NorthEast: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "north-east")),
		SouthWest: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "south-west")),
		SouthEast: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "south-east")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Mute:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// keyName lets a plain key string be matched against bindings.
type keyName string

func (k keyName) String() string { return string(k) }

// Resolve returns the action bound to the key, or an action of kind None.
func (km KeyMap) Resolve(k string) Action {
	name := keyName(k)
	moves := []struct {
		binding key.Binding
		dir     engine.Direction
	}{
		{km.North, engine.North},
		{km.South, engine.South},
		{km.West, engine.West},
		{km.East, engine.East},
		{km.NorthWest, engine.NorthWest},
		{km.NorthEast, engine.NorthEast},
		{km.SouthWest, engine.SouthWest},
		{km.SouthEast, engine.SouthEast},
	}
	for _, m := range moves {
		if key.Matches(name, m.binding) {
			return Action{Kind: Move, Dir: m.dir}
		}
	}

	switch {
	case key.Matches(name, km.Undo):
		return Action{Kind: Undo}
	case key.Matches(name, km.Restart):
		return Action{Kind: Restart}
	case key.Matches(name, km.Mute):
		return Action{Kind: Mute}
	case key.Matches(name, km.Help):
		return Action{Kind: Help}
	case key.Matches(name, km.Quit):
		return Action{Kind: Quit}
	}
	return Action{Kind: None}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.North, km.South, km.West, km.East, km.Undo, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.North, km.South, km.West, km.East},
		{km.NorthWest, km.NorthEast, km.SouthWest, km.SouthEast},
		{km.Undo, km.Restart, km.Mute},
		{km.Help, km.Quit},
	}
}
