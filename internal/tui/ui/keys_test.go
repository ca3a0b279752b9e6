package ui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
	}{
		{"NextField", keys.NextField},
		{"PrevField", keys.PrevField},
		{"MoodDown", keys.MoodDown},
		{"MoodUp", keys.MoodUp},
		{"Mood", keys.Mood},
		{"Submit", keys.Submit},
		{"Confirm", keys.Confirm},
		{"Refresh", keys.Refresh},
		{"Dismiss", keys.Dismiss},
		{"ToggleRegister", keys.ToggleRegister},
		{"Logout", keys.Logout},
		{"Theme", keys.Theme},
		{"Quit", keys.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("expected keys for binding %s", tt.name)
			}
			help := tt.binding.Help()
			if help.Key == "" {
				t.Errorf("expected help key for binding %s", tt.name)
			}
			if help.Desc == "" {
				t.Errorf("expected help description for binding %s", tt.name)
			}
		})
	}
}

func TestKeyBindingsMatch(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"Quit ctrl+c", keys.Quit, "ctrl+c"},
		{"Quit esc", keys.Quit, "esc"},
		{"Submit ctrl+s", keys.Submit, "ctrl+s"},
		{"Confirm enter", keys.Confirm, "enter"},
		{"Refresh ctrl+r", keys.Refresh, "ctrl+r"},
		{"Dismiss ctrl+x", keys.Dismiss, "ctrl+x"},
		{"ToggleRegister ctrl+r", keys.ToggleRegister, "ctrl+r"},
		{"Logout ctrl+l", keys.Logout, "ctrl+l"},
		{"Theme ctrl+t", keys.Theme, "ctrl+t"},
		{"NextField tab", keys.NextField, "tab"},
		{"PrevField shift+tab", keys.PrevField, "shift+tab"},
		{"MoodDown left", keys.MoodDown, "left"},
		{"MoodUp right", keys.MoodUp, "right"},
		{"Mood 1", keys.Mood, "1"},
		{"Mood 5", keys.Mood, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Contains(tt.binding.Keys(), tt.key) {
				t.Errorf("expected binding %s to include key %s, got keys %v", tt.name, tt.key, tt.binding.Keys())
			}
		})
	}
}

func TestActionKeysDoNotCollideWithTyping(t *testing.T) {
	keys := DefaultKeyMap()

	// These bindings fire while a text field is focused, so none of them
	// may be a printable character.
	for _, b := range []key.Binding{keys.Submit, keys.Refresh, keys.Dismiss, keys.Logout, keys.Theme, keys.Quit} {
		for _, k := range b.Keys() {
			if len([]rune(k)) == 1 {
				t.Errorf("binding %q uses printable key %q", b.Help().Desc, k)
			}
		}
	}
}
