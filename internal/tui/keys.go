package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// appKeys are handled by the shell regardless of the active page.
type appKeys struct {
	Quit    key.Binding
	Refresh key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// listKeys are the broker list bindings. Up/down and the table's own paging
// keys are left to the table widget.
type listKeys struct {
	SortID      key.Binding
	SortAddress key.Binding
	SortSize    key.Binding
	SortRack    key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	SmallerPage key.Binding
	LargerPage  key.Binding
	PageSize    key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
}

func defaultListKeys() listKeys {
	return listKeys{
		SortID: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-4", "sort column"),
		),
		SortAddress: key.NewBinding(key.WithKeys("2")),
		SortSize:    key.NewBinding(key.WithKeys("3")),
		SortRack:    key.NewBinding(key.WithKeys("4")),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		SmallerPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[/]", "page size"),
		),
		LargerPage: key.NewBinding(key.WithKeys("]")),
		PageSize: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "set page size"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Confirm: key.NewBinding(key.WithKeys("enter")),
		Cancel:  key.NewBinding(key.WithKeys("esc")),
	}
}

// helpLine renders the bindings that carry help text.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" || !b.Enabled() {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
