package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI. Text inputs capture plain
// characters, so every action outside a focused field uses a control key.
type KeyMap struct {
	// Field navigation
	NextField key.Binding
	PrevField key.Binding

	// Mood selector (only while the selector is focused)
	MoodDown key.Binding
	MoodUp   key.Binding
	Mood     key.Binding

	// Actions
	Submit         key.Binding
	Confirm        key.Binding
	Refresh        key.Binding
	Dismiss        key.Binding
	ToggleRegister key.Binding
	Logout         key.Binding
	Theme          key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),

		MoodDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "lower mood"),
		),
		MoodUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "raise mood"),
		),
		Mood: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "set mood"),
		),

		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "dismiss"),
		),
		ToggleRegister: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "login/register"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "logout"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}
