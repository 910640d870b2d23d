package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rovekit/internal/widget"
)

func newTestApp(t *testing.T) (*appModelAdapter, *widget.RadioGroup, *widget.Accordion) {
	t.Helper()
	radio := widget.NewRadioGroup("size", "Size",
		[]widget.Option{
			{ID: "small", Label: "Small"},
			{ID: "medium", Label: "Medium"},
			{ID: "large", Label: "Large"},
		}, widget.DefaultKeyMap(), widget.DefaultTheme())
	acc := widget.NewAccordion("docs", "Docs",
		[]widget.Section{
			{ID: "intro", Title: "Introduction", Lines: []string{"hello", "world"}},
			{ID: "usage", Title: "Usage", Lines: []string{"run it"}},
		}, 0, widget.DefaultKeyMap(), widget.DefaultTheme())

	m := NewAppModel([]Pane{
		{ID: "radio", Widget: radio},
		{ID: "accordion", Widget: acc},
	}, widget.DefaultKeyMap(), true)

	a := m.AsTeaModel().(*appModelAdapter)
	a.Init()
	return a, radio, acc
}

// drive feeds a message through Update and dispatches any resulting command's
// message back into the model, mirroring one runtime turn.
func drive(a *appModelAdapter, msg tea.Msg) {
	_, cmd := a.Update(msg)
	if cmd != nil {
		if next := cmd(); next != nil {
			a.Update(next)
		}
	}
}

func TestApp_InitFocusesFirstPane(t *testing.T) {
	a, radio, acc := newTestApp(t)

	if got := a.FocusedPane(); got != "radio" {
		t.Errorf("expected radio pane focused after init, got %q", got)
	}
	if !radio.Focused() || acc.Focused() {
		t.Error("expected exactly the radio widget focused")
	}
}

func TestApp_TabCyclesPanesAndWraps(t *testing.T) {
	a, _, _ := newTestApp(t)

	drive(a, tea.KeyMsg{Type: tea.KeyTab})
	if got := a.FocusedPane(); got != "accordion" {
		t.Fatalf("after tab want accordion, got %q", got)
	}

	drive(a, tea.KeyMsg{Type: tea.KeyTab})
	if got := a.FocusedPane(); got != "radio" {
		t.Errorf("tab from last pane wraps to first, got %q", got)
	}

	drive(a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := a.FocusedPane(); got != "accordion" {
		t.Errorf("shift+tab from first pane wraps to last, got %q", got)
	}
}

func TestApp_KeysRouteToFocusedWidget(t *testing.T) {
	a, radio, acc := newTestApp(t)

	drive(a, tea.KeyMsg{Type: tea.KeyDown})
	sel, ok := radio.Selected()
	if !ok || sel.ID != "medium" {
		t.Fatalf("expected down to select medium in the focused radio, got %v ok=%v", sel, ok)
	}
	if a.Status() != "size: Medium" {
		t.Errorf("expected status to echo the change, got %q", a.Status())
	}

	// The blurred accordion must not have moved.
	if exp, _ := acc.Expanded(); exp.ID != "intro" {
		t.Errorf("blurred accordion changed to %q", exp.ID)
	}
}

func TestApp_ClickActivatesOptionInPane(t *testing.T) {
	a, radio, _ := newTestApp(t)

	// Header is 2 rows; radio rows: 2 title, 3 Small, 4 Medium, 5 Large.
	drive(a, tea.MouseMsg{X: 1, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	sel, ok := radio.Selected()
	if !ok || sel.ID != "medium" {
		t.Fatalf("expected click on row 4 to select medium, got %v ok=%v", sel, ok)
	}
}

func TestApp_ClickOnBlurredPaneMovesFocusFirst(t *testing.T) {
	a, radio, acc := newTestApp(t)

	// Accordion starts at row 7 (2 header + 4 radio + 1 gap); its "Usage"
	// header sits below the expanded intro body: 7 title, 8 intro, 9-10
	// body, 11 usage.
	drive(a, tea.MouseMsg{X: 0, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if got := a.FocusedPane(); got != "accordion" {
		t.Fatalf("expected click to focus the accordion pane, got %q", got)
	}
	if exp, _ := acc.Expanded(); exp.ID != "usage" {
		t.Errorf("expected usage expanded, got %q", exp.ID)
	}
	if radio.Focused() {
		t.Error("expected radio blurred after focus moved")
	}
}

func TestApp_ClickOutsidePanesIgnored(t *testing.T) {
	a, radio, _ := newTestApp(t)

	drive(a, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, ok := radio.Selected(); ok {
		t.Error("expected click on the app header to change nothing")
	}
	if got := a.FocusedPane(); got != "radio" {
		t.Errorf("pane focus must not move, got %q", got)
	}
}

func TestApp_MouseDisabled(t *testing.T) {
	a, radio, _ := newTestApp(t)
	a.mouse = false

	drive(a, tea.MouseMsg{X: 1, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, ok := radio.Selected(); ok {
		t.Error("expected clicks ignored with mouse disabled")
	}
}

func TestApp_QuitDetachesWidgets(t *testing.T) {
	a, radio, _ := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit to stop the program")
	}

	// Detached widgets ignore further input.
	drive(a, tea.KeyMsg{Type: tea.KeyDown})
	if _, ok := radio.Selected(); ok {
		t.Error("expected no selection changes after quit")
	}
}
