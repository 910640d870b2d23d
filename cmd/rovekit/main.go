package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rovekit/internal/config"
	"rovekit/internal/ui"
	"rovekit/internal/widget"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rovekit: %v\n", err)
		os.Exit(1)
	}

	keys := widget.DefaultKeyMap()
	if cfg.UI.VimKeys {
		keys = widget.VimKeyMap()
	}
	theme := widget.NewTheme(cfg.UI.Accent, cfg.UI.Highlight)

	radio := widget.NewRadioGroup("notifications", "Notifications",
		[]widget.Option{
			{ID: "all", Label: "Everything", Desc: "every event, as it happens"},
			{ID: "mentions", Label: "Mentions only", Desc: "only when someone names you"},
			{ID: "none", Label: "Nothing", Desc: "stay focused"},
		}, keys, theme)
	radio.Preselect("mentions")

	accordion := widget.NewAccordion("about", "About roving focus",
		[]widget.Section{
			{ID: "what", Title: "What is it?", Lines: []string{
				"Only one child of a composite widget is reachable",
				"by Tab at a time; arrow keys move that one slot.",
			}},
			{ID: "why", Title: "Why bother?", Lines: []string{
				"Keyboard users skip the whole group with one Tab",
				"instead of wading through every option.",
			}},
			{ID: "how", Title: "How does rovekit do it?", Lines: []string{
				"A controller owns the selection, mirrors it onto",
				"item flags, and asks the host to move focus.",
			}},
		}, 0, keys, theme)

	model := ui.NewAppModel([]ui.Pane{
		{ID: "notifications", Widget: radio},
		{ID: "about", Widget: accordion},
	}, keys, cfg.UI.Mouse)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model.AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rovekit: %v\n", err)
		os.Exit(1)
	}
}
