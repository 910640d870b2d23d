package roving

// Item is one selectable leaf within a group. Implementations expose the two
// logical flags the controller maintains; how those flags surface to the user
// (a filled radio marker, an expanded section) is the host's business.
//
// Items are compared by interface identity, so implementations should be
// pointers and the host must return the same handles across enumerations
// within one event-handling turn.
type Item interface {
	Selected() bool
	SetSelected(bool)
	Focusable() bool
	SetFocusable(bool)
}

// Host is the widget-side contract the controller operates against.
type Host interface {
	// Items returns the ordered candidate items of the group. Called on
	// demand for every operation; the host may grow or shrink the group
	// between events, but not during one.
	Items() []Item

	// FocusItem requests input focus for the given item. Called exactly once
	// per Select, after all flags are updated.
	FocusItem(Item)
}
