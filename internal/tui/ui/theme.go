package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the default theme used when no theme is configured
const DefaultTheme = "dracula"

// ThemeProvider manages TUI themes using bubbletint
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider creates a ThemeProvider starting at initialTheme.
// Empty or unknown IDs start at DefaultTheme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	allTints := tint.DefaultTints()

	var defaultTint tint.Tint
	for _, t := range allTints {
		if t.ID() == DefaultTheme {
			defaultTint = t
			break
		}
	}
	if defaultTint == nil && len(allTints) > 0 {
		defaultTint = allTints[0]
	}

	registry := tint.NewRegistry(defaultTint, allTints...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	return &ThemeProvider{registry: registry}
}

// SetTheme selects a theme by ID and reports whether it exists.
func (tp *ThemeProvider) SetTheme(id string) bool {
	return tp.registry.SetTintID(id)
}

// Cycle advances to the next theme and returns its ID.
func (tp *ThemeProvider) Cycle() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// Current returns the ID of the current theme.
func (tp *ThemeProvider) Current() string {
	return tp.registry.ID()
}

// DisplayName returns the human-readable name of the current theme.
func (tp *ThemeProvider) DisplayName() string {
	return tp.registry.DisplayName()
}

// Themes returns all theme IDs, sorted.
func (tp *ThemeProvider) Themes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// Styles returns styles built from the current theme's palette.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
