package tui

// keymap.go — key bindings for the dashboard, surfaced through the
// bubbles help footer.

import "github.com/charmbracelet/bubbles/key"

// keyMap groups every binding the dashboard responds to.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Select  key.Binding
	Compare key.Binding
	Search  key.Binding
	Add     key.Binding
	Edit    key.Binding
	NewCert key.Binding
	Export  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "expand"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select for compare"),
		),
		Compare: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compare"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add supplier"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit supplier"),
		),
		NewCert: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new certification"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp satisfies help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Select, k.Compare, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand, k.Search},
		{k.Select, k.Compare, k.Export},
		{k.Add, k.Edit, k.NewCert},
		{k.Back, k.Help, k.Quit},
	}
}
