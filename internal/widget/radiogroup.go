package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rovekit/internal/roving"
	"rovekit/internal/widget/textutil"
)

// Option is one selectable entry in a RadioGroup.
type Option struct {
	ID    string
	Label string
	Desc  string // optional description rendered under the label
}

// RadioChangedMsg is emitted as a command when the checked option changes.
type RadioChangedMsg struct {
	Group  string
	Option Option
}

// radioItem carries the two roving flags for one option.
type radioItem struct {
	opt       Option
	selected  bool
	focusable bool
}

func (it *radioItem) Selected() bool      { return it.selected }
func (it *radioItem) SetSelected(v bool)  { it.selected = v }
func (it *radioItem) Focusable() bool     { return it.focusable }
func (it *radioItem) SetFocusable(v bool) { it.focusable = v }

// RadioGroup is a mutually-exclusive option list. A roving controller decides
// which option is checked and which one owns the cursor; the widget supplies
// the option enumeration and receives focus-transfer requests as cursor
// moves. It is the Bubble Tea face of one roving group.
type RadioGroup struct {
	id    string
	title string
	items []*radioItem
	ctrl  *roving.Controller
	keys  KeyMap
	theme Theme

	width   int
	cursor  *radioItem // target of the last focus-transfer request
	focused bool       // app-level focus; keys are ignored without it
}

var _ roving.Host = (*RadioGroup)(nil)

// NewRadioGroup creates a radio group. Call Preselect before Attach to start
// with an option checked, or Attach directly for a group with focus on the
// first option and nothing checked.
func NewRadioGroup(id, title string, opts []Option, keys KeyMap, theme Theme) *RadioGroup {
	g := &RadioGroup{
		id:    id,
		title: title,
		keys:  keys,
		theme: theme,
		width: 40,
	}
	for _, o := range opts {
		g.items = append(g.items, &radioItem{opt: o})
	}
	g.ctrl = roving.NewController(g)
	return g
}

// Items implements roving.Host.
func (g *RadioGroup) Items() []roving.Item {
	out := make([]roving.Item, len(g.items))
	for i, it := range g.items {
		out[i] = it
	}
	return out
}

// FocusItem implements roving.Host. The widget's notion of input focus is its
// cursor row.
func (g *RadioGroup) FocusItem(it roving.Item) {
	g.cursor = it.(*radioItem)
}

// Preselect marks the option with the given ID as checked. Only meaningful
// before Attach, which adopts and normalizes the marked option.
func (g *RadioGroup) Preselect(id string) {
	for _, it := range g.items {
		it.selected = it.opt.ID == id
	}
}

// Attach establishes the roving invariants over the current options and
// returns a disposer that detaches the controller. Callers own the disposer;
// the widget makes no selection mutations after it runs.
func (g *RadioGroup) Attach() func() {
	detach := g.ctrl.Attach()
	g.syncCursor()
	return detach
}

// SetOptions replaces the option list, keeping the current selection when an
// option with the same ID survives. If the group is attached the invariants
// are re-established immediately; an empty group stays dormant until options
// arrive.
func (g *RadioGroup) SetOptions(opts []Option) {
	selectedID := ""
	if o, ok := g.Selected(); ok {
		selectedID = o.ID
	}
	g.items = nil
	for _, o := range opts {
		g.items = append(g.items, &radioItem{opt: o, selected: o.ID == selectedID && selectedID != ""})
	}
	if g.ctrl.Attached() {
		g.ctrl.Attach()
		g.syncCursor()
	}
}

// Selected returns the checked option, if any.
func (g *RadioGroup) Selected() (Option, bool) {
	if it := g.ctrl.Selected(); it != nil {
		return it.(*radioItem).opt, true
	}
	return Option{}, false
}

// Cursor returns the ID of the option owning the roving focus, or "" when
// the group is empty.
func (g *RadioGroup) Cursor() string {
	if g.cursor == nil {
		return ""
	}
	return g.cursor.opt.ID
}

// ID returns the group identifier used in RadioChangedMsg.
func (g *RadioGroup) ID() string { return g.id }

// Focus gives the widget app-level focus so it handles key events.
func (g *RadioGroup) Focus() { g.focused = true }

// Blur removes app-level focus.
func (g *RadioGroup) Blur() { g.focused = false }

// Focused reports whether the widget has app-level focus.
func (g *RadioGroup) Focused() bool { return g.focused }

// SetWidth sets the rendered row width.
func (g *RadioGroup) SetWidth(w int) {
	if w > 0 {
		g.width = w
	}
}

// Height returns the number of rows View renders.
func (g *RadioGroup) Height() int {
	h := 1 // title
	for _, it := range g.items {
		h++
		if it.opt.Desc != "" {
			h++
		}
	}
	return h
}

// Update handles key events while the widget has app-level focus. Directional
// keys move the selection; enter/space re-activate the cursor row. Unbound
// keys fall through untouched.
func (g *RadioGroup) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !g.focused {
		return nil
	}

	before := g.ctrl.Selected()
	if kind, ok := g.keys.eventFor(keyMsg); ok {
		if g.ctrl.Handle(roving.Event{Kind: kind}) {
			return g.changedCmd(before)
		}
		return nil
	}
	if key.Matches(keyMsg, g.keys.Activate) {
		if f := g.ctrl.Focused(); f != nil {
			if g.ctrl.Handle(roving.Event{Kind: roving.Activate, Target: f}) {
				return g.changedCmd(before)
			}
		}
	}
	return nil
}

// Click activates the option rendered at the widget-local row y. A click on
// an option's description row activates that option as well; clicks on the
// title or outside any option are ignored.
func (g *RadioGroup) Click(x, y int) tea.Cmd {
	it, ok := g.itemAt(y)
	if !ok {
		return nil
	}
	before := g.ctrl.Selected()
	if g.ctrl.Handle(roving.Event{Kind: roving.Activate, Target: it}) {
		return g.changedCmd(before)
	}
	return nil
}

// View renders the title and one padded row per option (plus description
// rows), so every row is a full-width mouse target.
func (g *RadioGroup) View() string {
	var b strings.Builder
	b.WriteString(g.theme.Title.Render(textutil.Truncate(g.title, g.width)))
	for _, it := range g.items {
		marker := "( )"
		if it.selected {
			marker = "(•)"
		}
		style := g.theme.Normal
		switch {
		case g.focused && it == g.cursor:
			style = g.theme.Focused
		case it.selected:
			style = g.theme.Selected
		}
		b.WriteString("\n" + style.Render(textutil.PadRight(marker+" "+it.opt.Label, g.width)))
		if it.opt.Desc != "" {
			b.WriteString("\n" + g.theme.Muted.Render(textutil.PadRight("    "+it.opt.Desc, g.width)))
		}
	}
	return b.String()
}

// changedCmd emits RadioChangedMsg when the selection moved away from before.
func (g *RadioGroup) changedCmd(before roving.Item) tea.Cmd {
	after := g.ctrl.Selected()
	if after == nil || after == before {
		return nil
	}
	msg := RadioChangedMsg{Group: g.id, Option: after.(*radioItem).opt}
	return func() tea.Msg { return msg }
}

// syncCursor mirrors the controller's focusable item into the cursor after
// attach, which establishes focus without a focus-transfer request.
func (g *RadioGroup) syncCursor() {
	if f := g.ctrl.Focused(); f != nil {
		g.cursor = f.(*radioItem)
	} else {
		g.cursor = nil
	}
}

// itemAt maps a widget-local row to the option occupying it. Row 0 is the
// title; each option owns its label row and its description row.
func (g *RadioGroup) itemAt(y int) (*radioItem, bool) {
	row := 1
	for _, it := range g.items {
		h := 1
		if it.opt.Desc != "" {
			h = 2
		}
		if y >= row && y < row+h {
			return it, true
		}
		row += h
	}
	return nil, false
}
