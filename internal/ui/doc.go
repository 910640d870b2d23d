// Package ui composes rovekit's widgets into the demo gallery application.
//
// Core abstractions:
//   - Widget: the pane-content contract both widgets satisfy
//   - Pane: one widget plus its identifier in the vertical stack
//   - AppModel: the root Bubble Tea model; routes keys to the focused pane,
//     clicks to the pane under the pointer, and renders status + help
//
// Pane focus reuses the same roving controller the widgets use internally,
// with Tab/Shift+Tab as the directional events.
package ui
