// Package roving implements the roving-selection pattern shared by rovekit's
// composite widgets: within a group of candidate items, exactly one item is
// keyboard-focusable at a time, and at most one is selected. Directional
// events move the selection circularly through the group; activating an item
// selects it directly.
//
// The controller owns the selection/focus identity itself. The two item flags
// it maintains (selected, focusable) are outputs mirrored onto the host's
// items, never read back as the source of truth. The host supplies the
// ordered item enumeration on demand and receives a single focus-transfer
// request per selection change.
//
// Everything here runs synchronously on the caller's goroutine; the expected
// caller is a Bubble Tea update loop, which already serializes events.
package roving
