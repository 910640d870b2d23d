package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rovekit/internal/roving"
	"rovekit/internal/widget"
)

// headerRows is the number of rows above the first pane (title + blank line).
const headerRows = 2

// Pane pairs a widget with its identifier in the gallery.
type Pane struct {
	ID     string
	Widget Widget
}

// paneItem carries the roving flags for one pane. Pane focus is itself a
// roving group: Tab and Shift+Tab walk it exactly like arrow keys walk the
// options inside a widget.
type paneItem struct {
	Pane
	selected  bool
	focusable bool
}

func (p *paneItem) Selected() bool      { return p.selected }
func (p *paneItem) SetSelected(v bool)  { p.selected = v }
func (p *paneItem) Focusable() bool     { return p.focusable }
func (p *paneItem) SetFocusable(v bool) { p.focusable = v }

// AppModel is the root model of the demo gallery: a vertical stack of widget
// panes, a status line echoing the latest selection change, and a help bar.
type AppModel struct {
	panes []*paneItem
	ctrl  *roving.Controller
	keys  appKeyMap
	help  help.Model

	widgetKeys widget.KeyMap // rendered in the help bar
	mouse      bool
	showHelp   bool
	status     string
	width      int
	disposers  []func()
}

var _ roving.Host = (*AppModel)(nil)

// NewAppModel builds the gallery around the given panes. The first pane
// starts focused. widgetKeys is only used for help rendering; each widget
// holds its own copy for dispatch.
func NewAppModel(panes []Pane, widgetKeys widget.KeyMap, mouse bool) *AppModel {
	m := &AppModel{
		keys:       defaultAppKeyMap(),
		help:       help.New(),
		widgetKeys: widgetKeys,
		mouse:      mouse,
		status:     "ready",
	}
	for i, p := range panes {
		m.panes = append(m.panes, &paneItem{Pane: p, selected: i == 0})
	}
	m.ctrl = roving.NewController(m)
	return m
}

// Items implements roving.Host over the pane stack.
func (m *AppModel) Items() []roving.Item {
	out := make([]roving.Item, len(m.panes))
	for i, p := range m.panes {
		out[i] = p
	}
	return out
}

// FocusItem implements roving.Host: a pane-focus transfer focuses the target
// pane's widget and blurs the rest.
func (m *AppModel) FocusItem(it roving.Item) {
	for _, p := range m.panes {
		if p == it {
			p.Widget.Focus()
		} else {
			p.Widget.Blur()
		}
	}
}

// FocusedPane returns the ID of the pane owning input focus, or "".
func (m *AppModel) FocusedPane() string {
	for _, p := range m.panes {
		if p.Widget.Focused() {
			return p.ID
		}
	}
	return ""
}

// Status returns the current status line text.
func (m *AppModel) Status() string { return m.status }

// AsTeaModel wraps the AppModel for tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// appModelAdapter implements tea.Model on top of AppModel.
type appModelAdapter struct {
	*AppModel
}

var _ tea.Model = (*appModelAdapter)(nil)

// Init attaches every widget and the pane-focus group, keeping the disposers
// for teardown on quit.
func (a *appModelAdapter) Init() tea.Cmd {
	for _, p := range a.panes {
		a.disposers = append(a.disposers, p.Widget.Attach())
	}
	a.disposers = append(a.disposers, a.ctrl.Attach())

	// Attach normalizes flags without issuing a focus transfer; mirror the
	// initial flags into the widgets once.
	for _, p := range a.panes {
		if p.focusable {
			p.Widget.Focus()
		} else {
			p.Widget.Blur()
		}
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		for _, p := range a.panes {
			p.Widget.SetWidth(msg.Width - 2)
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, a.quit()
		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, a.keys.NextPane):
			a.ctrl.Handle(roving.Event{Kind: roving.MoveNext})
			return a, nil
		case key.Matches(msg, a.keys.PrevPane):
			a.ctrl.Handle(roving.Event{Kind: roving.MovePrev})
			return a, nil
		}
		// Everything else belongs to the focused widget.
		for _, p := range a.panes {
			if p.Widget.Focused() {
				return a, p.Widget.Update(msg)
			}
		}
		return a, nil

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case widget.RadioChangedMsg:
		a.status = msg.Group + ": " + msg.Option.Label
		return a, nil

	case widget.AccordionChangedMsg:
		a.status = msg.Accordion + ": " + msg.Section.Title
		return a, nil
	}
	return a, nil
}

// handleMouse routes a left click to the pane under the pointer. Clicking an
// unfocused pane moves pane focus there before the widget sees the click.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !a.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	p, localY := a.paneAt(msg.Y)
	if p == nil {
		return nil
	}
	if !p.Widget.Focused() {
		a.ctrl.Select(p)
	}
	return p.Widget.Click(msg.X, localY)
}

// paneAt finds the pane covering the terminal row y and returns the row
// translated into the pane's local space. Panes are stacked with one blank
// row between them.
func (a *appModelAdapter) paneAt(y int) (*paneItem, int) {
	top := headerRows
	for _, p := range a.panes {
		h := p.Widget.Height()
		if y >= top && y < top+h {
			return p, y - top
		}
		top += h + 1
	}
	return nil, 0
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString("rovekit gallery\n\n")
	for _, p := range a.panes {
		b.WriteString(p.Widget.View())
		b.WriteString("\n\n")
	}
	b.WriteString(a.status + "\n")
	b.WriteString(a.help.View(galleryKeyMap{app: a.keys, widget: a.widgetKeys}))
	return b.String()
}

// quit detaches everything before stopping the program.
func (a *appModelAdapter) quit() tea.Cmd {
	for _, d := range a.disposers {
		d()
	}
	a.disposers = nil
	return tea.Quit
}

// appKeyMap holds the gallery-level bindings.
type appKeyMap struct {
	NextPane key.Binding
	PrevPane key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous pane"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// galleryKeyMap merges the app bindings with the widget bindings for the
// help bar.
type galleryKeyMap struct {
	app    appKeyMap
	widget widget.KeyMap
}

func (k galleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.app.NextPane, k.widget.Prev, k.widget.Next, k.app.Help, k.app.Quit}
}

func (k galleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.app.NextPane, k.app.PrevPane},
		{k.widget.Prev, k.widget.Next, k.widget.First, k.widget.Last},
		{k.widget.Activate, k.app.Help, k.app.Quit},
	}
}
