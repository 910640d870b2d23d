package ui

import tea "github.com/charmbracelet/bubbletea"

// Widget is the contract a pane's content satisfies. Both rovekit widgets
// implement it; the app routes key input to the focused widget and clicks to
// the widget under the pointer.
type Widget interface {
	// Attach establishes the widget's internal invariants and returns a
	// disposer the app runs on teardown.
	Attach() func()

	Update(tea.Msg) tea.Cmd
	View() string
	Height() int
	SetWidth(int)

	Focus()
	Blur()
	Focused() bool

	// Click receives widget-local coordinates.
	Click(x, y int) tea.Cmd
}
