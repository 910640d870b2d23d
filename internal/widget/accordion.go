package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rovekit/internal/roving"
	"rovekit/internal/widget/textutil"
)

// Section is one header + body pair in an Accordion.
type Section struct {
	ID    string
	Title string
	Lines []string
}

// AccordionChangedMsg is emitted as a command when the expanded section
// changes.
type AccordionChangedMsg struct {
	Accordion string
	Section   Section
}

// sectionItem carries the two roving flags for one section header.
type sectionItem struct {
	sec       Section
	selected  bool
	focusable bool
}

func (it *sectionItem) Selected() bool      { return it.selected }
func (it *sectionItem) SetSelected(v bool)  { it.selected = v }
func (it *sectionItem) Focusable() bool     { return it.focusable }
func (it *sectionItem) SetFocusable(v bool) { it.focusable = v }

// Accordion is a vertical stack of sections where the selected section is the
// expanded one. Headers form the roving group: directional keys move the
// expansion, enter/space re-expand the header under the cursor, and a click
// on a header or anywhere inside its body expands that section.
type Accordion struct {
	id    string
	title string
	items []*sectionItem
	ctrl  *roving.Controller
	keys  KeyMap
	theme Theme

	width   int
	cursor  *sectionItem
	focused bool
}

var _ roving.Host = (*Accordion)(nil)

// NewAccordion creates an accordion with the section at initial pre-marked
// expanded; Attach adopts and normalizes that mark. Pass a negative initial
// to start fully collapsed with focus on the first header.
func NewAccordion(id, title string, secs []Section, initial int, keys KeyMap, theme Theme) *Accordion {
	a := &Accordion{
		id:    id,
		title: title,
		keys:  keys,
		theme: theme,
		width: 40,
	}
	for i, s := range secs {
		a.items = append(a.items, &sectionItem{sec: s, selected: i == initial})
	}
	a.ctrl = roving.NewController(a)
	return a
}

// Items implements roving.Host.
func (a *Accordion) Items() []roving.Item {
	out := make([]roving.Item, len(a.items))
	for i, it := range a.items {
		out[i] = it
	}
	return out
}

// FocusItem implements roving.Host.
func (a *Accordion) FocusItem(it roving.Item) {
	a.cursor = it.(*sectionItem)
}

// Attach establishes the roving invariants over the section headers and
// returns a disposer that detaches the controller.
func (a *Accordion) Attach() func() {
	detach := a.ctrl.Attach()
	if f := a.ctrl.Focused(); f != nil {
		a.cursor = f.(*sectionItem)
	}
	return detach
}

// Expanded returns the expanded section, if any.
func (a *Accordion) Expanded() (Section, bool) {
	if it := a.ctrl.Selected(); it != nil {
		return it.(*sectionItem).sec, true
	}
	return Section{}, false
}

// ID returns the accordion identifier used in AccordionChangedMsg.
func (a *Accordion) ID() string { return a.id }

// Focus gives the widget app-level focus so it handles key events.
func (a *Accordion) Focus() { a.focused = true }

// Blur removes app-level focus.
func (a *Accordion) Blur() { a.focused = false }

// Focused reports whether the widget has app-level focus.
func (a *Accordion) Focused() bool { return a.focused }

// SetWidth sets the rendered row width.
func (a *Accordion) SetWidth(w int) {
	if w > 0 {
		a.width = w
	}
}

// Height returns the number of rows View renders: the title, one header per
// section, and the body of the expanded section.
func (a *Accordion) Height() int {
	h := 1
	for _, it := range a.items {
		h++
		if it.selected {
			h += len(it.sec.Lines)
		}
	}
	return h
}

// Update handles key events while the widget has app-level focus.
func (a *Accordion) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !a.focused {
		return nil
	}

	before := a.ctrl.Selected()
	if kind, ok := a.keys.eventFor(keyMsg); ok {
		if a.ctrl.Handle(roving.Event{Kind: kind}) {
			return a.changedCmd(before)
		}
		return nil
	}
	if key.Matches(keyMsg, a.keys.Activate) {
		if f := a.ctrl.Focused(); f != nil {
			if a.ctrl.Handle(roving.Event{Kind: roving.Activate, Target: f}) {
				return a.changedCmd(before)
			}
		}
	}
	return nil
}

// Click expands the section rendered at the widget-local row y. Body rows
// count as part of their section, so a click inside an expanded body keeps
// that section expanded; clicks on the title are ignored.
func (a *Accordion) Click(x, y int) tea.Cmd {
	it, ok := a.sectionAt(y)
	if !ok {
		return nil
	}
	before := a.ctrl.Selected()
	if a.ctrl.Handle(roving.Event{Kind: roving.Activate, Target: it}) {
		return a.changedCmd(before)
	}
	return nil
}

// View renders the title, the section headers with expansion markers, and
// the expanded body indented under its header.
func (a *Accordion) View() string {
	var b strings.Builder
	b.WriteString(a.theme.Title.Render(textutil.Truncate(a.title, a.width)))
	for _, it := range a.items {
		marker := "▸"
		if it.selected {
			marker = "▾"
		}
		style := a.theme.Normal
		switch {
		case a.focused && it == a.cursor:
			style = a.theme.Focused
		case it.selected:
			style = a.theme.Selected
		}
		b.WriteString("\n" + style.Render(textutil.PadRight(marker+" "+it.sec.Title, a.width)))
		if it.selected {
			for _, line := range it.sec.Lines {
				b.WriteString("\n" + a.theme.Muted.Render(textutil.PadRight("  "+line, a.width)))
			}
		}
	}
	return b.String()
}

func (a *Accordion) changedCmd(before roving.Item) tea.Cmd {
	after := a.ctrl.Selected()
	if after == nil || after == before {
		return nil
	}
	msg := AccordionChangedMsg{Accordion: a.id, Section: after.(*sectionItem).sec}
	return func() tea.Msg { return msg }
}

// sectionAt maps a widget-local row to the section occupying it, counting the
// expanded body rows as part of their section.
func (a *Accordion) sectionAt(y int) (*sectionItem, bool) {
	row := 1
	for _, it := range a.items {
		h := 1
		if it.selected {
			h += len(it.sec.Lines)
		}
		if y >= row && y < row+h {
			return it, true
		}
		row += h
	}
	return nil, false
}
