package roving

import "fmt"

// Controller maintains the roving-selection invariants over one host group:
// at most one item selected, exactly one item focusable while the group is
// non-empty and attached, and the selected item (when there is one) is the
// focusable one.
type Controller struct {
	host     Host
	attached bool

	// selected and focused are the controller's own record of group state.
	// Item flags mirror these, they are never read back except during Attach.
	selected Item
	focused  Item
}

// NewController creates a controller for the given host. The controller makes
// no mutations until Attach is called.
func NewController(host Host) *Controller {
	return &Controller{host: host}
}

// Attach (re)establishes the group invariants and starts event handling.
// If an item is already selected — either from a previous attach or because
// the host pre-marked one before attaching — that selection is kept and
// normalized: all other items lose both flags, the selected item gains both.
// Otherwise the first item becomes focusable and nothing is selected.
//
// An empty group is not an error: the controller attaches with no focusable
// item, and the host re-invokes Attach once children exist.
//
// The returned disposer detaches the controller; it is safe to call more than
// once and to combine with an explicit Detach, so callers can defer it for
// guaranteed teardown.
func (c *Controller) Attach() func() {
	c.attached = true

	items := c.host.Items()
	if len(items) == 0 {
		c.selected = nil
		c.focused = nil
		return c.Detach
	}

	sel := c.selected
	if sel == nil || indexOf(items, sel) < 0 {
		sel = nil
		for _, it := range items {
			if it.Selected() {
				sel = it
				break
			}
		}
	}

	focus := sel
	if focus == nil {
		focus = items[0]
	}
	for _, it := range items {
		it.SetSelected(it == sel)
		it.SetFocusable(it == focus)
	}
	c.selected = sel
	c.focused = focus
	return c.Detach
}

// Detach stops event handling. The controller makes no further mutations
// until reattached. Idempotent.
func (c *Controller) Detach() {
	c.attached = false
}

// Attached reports whether the controller is currently handling events.
func (c *Controller) Attached() bool {
	return c.attached
}

// Selected returns the currently selected item, or nil when no selection
// exists.
func (c *Controller) Selected() Item {
	return c.selected
}

// Focused returns the currently focusable item, or nil when the group is
// empty or the controller has never attached.
func (c *Controller) Focused() Item {
	return c.focused
}

// Next returns the item immediately after current, wrapping from the last
// item to the first. A 1-item group is its own next.
// Panics if the group is empty or current is not in it.
func (c *Controller) Next(current Item) Item {
	items := c.host.Items()
	idx := mustIndex(items, current)
	return items[(idx+1)%len(items)]
}

// Prev returns the item immediately before current, wrapping from the first
// item to the last.
// Panics if the group is empty or current is not in it.
func (c *Controller) Prev(current Item) Item {
	items := c.host.Items()
	idx := mustIndex(items, current)
	return items[(idx+len(items)-1)%len(items)]
}

// First returns the first item of the group. Panics on an empty group.
func (c *Controller) First() Item {
	items := c.host.Items()
	if len(items) == 0 {
		panic("roving: navigation on empty group")
	}
	return items[0]
}

// Last returns the last item of the group. Panics on an empty group.
func (c *Controller) Last() Item {
	items := c.host.Items()
	if len(items) == 0 {
		panic("roving: navigation on empty group")
	}
	return items[len(items)-1]
}

// Select is the single funnel for all selection changes: it clears both flags
// on every item in the group, sets both on target, records the new state, and
// issues exactly one focus-transfer request for target. The invariants hold
// again by the time Select returns.
//
// Passing an item that is not in the host's enumeration is a contract breach
// and panics; callers must only pass items obtained from the group itself.
func (c *Controller) Select(target Item) {
	items := c.host.Items()
	if indexOf(items, target) < 0 {
		panic("roving: select of item outside group")
	}
	for _, it := range items {
		it.SetSelected(it == target)
		it.SetFocusable(it == target)
	}
	c.selected = target
	c.focused = target
	c.host.FocusItem(target)
}

// Handle dispatches one discrete input event. Directional events navigate
// from the current selection, or from the first item when nothing is selected
// yet. Activate selects ev.Target directly.
//
// Events are ignored (returning false) while detached, on an empty group, for
// an Activate with no target, and for unrecognized kinds.
func (c *Controller) Handle(ev Event) bool {
	if !c.attached {
		return false
	}
	items := c.host.Items()
	if len(items) == 0 {
		return false
	}

	current := c.selected
	if current == nil || indexOf(items, current) < 0 {
		current = items[0]
	}

	switch ev.Kind {
	case MovePrev:
		c.Select(c.Prev(current))
	case MoveNext:
		c.Select(c.Next(current))
	case MoveFirst:
		c.Select(items[0])
	case MoveLast:
		c.Select(items[len(items)-1])
	case Activate:
		if ev.Target == nil {
			return false
		}
		c.Select(ev.Target)
	default:
		return false
	}
	return true
}

func indexOf(items []Item, target Item) int {
	for i, it := range items {
		if it == target {
			return i
		}
	}
	return -1
}

func mustIndex(items []Item, current Item) int {
	if len(items) == 0 {
		panic("roving: navigation on empty group")
	}
	idx := indexOf(items, current)
	if idx < 0 {
		panic(fmt.Sprintf("roving: item %v not in group", current))
	}
	return idx
}
