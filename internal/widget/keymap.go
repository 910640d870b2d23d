package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rovekit/internal/roving"
)

// KeyMap defines the navigation bindings shared by RadioGroup and Accordion.
// It implements help.KeyMap so the demo's help bar can render it directly.
type KeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
}

// DefaultKeyMap binds arrow keys plus Home/End.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "left"),
			key.WithHelp("↑/←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "right"),
			key.WithHelp("↓/→", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),
	}
}

// VimKeyMap extends the defaults with h/j/k/l and g/G.
func VimKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Prev = key.NewBinding(
		key.WithKeys("up", "left", "k", "h"),
		key.WithHelp("↑/k", "previous"),
	)
	km.Next = key.NewBinding(
		key.WithKeys("down", "right", "j", "l"),
		key.WithHelp("↓/j", "next"),
	)
	km.First = key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	)
	km.Last = key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	)
	return km
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Activate}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Prev, km.Next},
		{km.First, km.Last},
		{km.Activate},
	}
}

// eventFor maps a key press to a directional roving event. Activation is not
// mapped here because its target depends on widget state.
func (km KeyMap) eventFor(msg tea.KeyMsg) (roving.EventKind, bool) {
	switch {
	case key.Matches(msg, km.Prev):
		return roving.MovePrev, true
	case key.Matches(msg, km.Next):
		return roving.MoveNext, true
	case key.Matches(msg, km.First):
		return roving.MoveFirst, true
	case key.Matches(msg, km.Last):
		return roving.MoveLast, true
	}
	return 0, false
}
