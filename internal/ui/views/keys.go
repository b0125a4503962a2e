package views

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the footer
type KeyMap struct {
	Filter  key.Binding
	Cycle   key.Binding
	Search  key.Binding
	Clear   key.Binding
	Scroll  key.Binding
	Reload  key.Binding
	Results key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// NewKeyMap creates the footer bindings. Features that are not available are
// disabled and left out of the footer.
func NewKeyMap(filtersEnabled, searchEnabled bool) KeyMap {
	k := KeyMap{
		Filter: key.NewBinding(
			key.WithKeys("a", "c", "u", "p", "1", "2", "3", "4"),
			key.WithHelp("a/c/u/p", "filter"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next filter"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("j", "k", "up", "down", "pgup", "pgdown"),
			key.WithHelp("j/k", "scroll"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Results: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "pager"),
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
	k.Filter.SetEnabled(filtersEnabled)
	k.Cycle.SetEnabled(filtersEnabled)
	k.Search.SetEnabled(searchEnabled)
	k.Clear.SetEnabled(searchEnabled)
	return k
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Search, k.Scroll, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Filter, k.Cycle},
		{k.Search, k.Clear},
		{k.Scroll, k.Results},
		{k.Reload, k.Help, k.Quit},
	}
}
