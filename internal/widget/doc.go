// Package widget provides rovekit's composite Bubble Tea widgets.
//
// Core pieces:
//   - RadioGroup: mutually-exclusive option list with a roving cursor
//   - Accordion: section stack where exactly one section is expanded
//   - KeyMap: shared bubbles/key navigation bindings (arrow or vim flavor)
//   - Theme: shared lipgloss style set built from config colors
//
// Each widget is the roving.Host for its own group: it exposes the item
// enumeration, receives focus-transfer requests as cursor moves, and
// translates key and mouse input into roving events. Apps embed widgets,
// route messages to the focused one, and listen for the *ChangedMsg commands.
package widget
