package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings for the TUI.
type KeyMap struct {
	Quit     key.Binding
	Select   key.Binding
	Ban      key.Binding
	Mute     key.Binding
	Remove   key.Binding
	Approve  key.Binding
	Sort     key.Binding
	Reload   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Ban: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "ban/unban"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute/unmute"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove selected"),
		),
		Approve: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "approve selected"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by time"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←", "prev page"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),
	}
}

func (k KeyMap) help() []key.Binding {
	return []key.Binding{k.Select, k.Ban, k.Mute, k.Remove, k.Approve, k.Sort, k.Reload, k.PrevPage, k.NextPage, k.Quit}
}
