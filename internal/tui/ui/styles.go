package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Header
	Header    lipgloss.Style
	Title     lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Form
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	MoodOption   lipgloss.Style
	Hint         lipgloss.Style

	// Feed
	EntryDate    lipgloss.Style
	EntryContent lipgloss.Style
	Pill         lipgloss.Style
	Moods        [5]lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Notices
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// palette maps semantic roles to colors.
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	danger    lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	pillFg    lipgloss.TerminalColor
	pillBg    lipgloss.TerminalColor
	moods     [5]lipgloss.TerminalColor
}

// DefaultStyles returns styles using the 256-color palette
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),  // Purple
		secondary: lipgloss.Color("39"),  // Cyan
		muted:     lipgloss.Color("240"), // Gray
		success:   lipgloss.Color("82"),
		warning:   lipgloss.Color("214"),
		danger:    lipgloss.Color("196"),
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		pillFg:    lipgloss.Color("255"),
		pillBg:    lipgloss.Color("60"),
		moods: [5]lipgloss.TerminalColor{
			lipgloss.Color("196"),
			lipgloss.Color("208"),
			lipgloss.Color("220"),
			lipgloss.Color("148"),
			lipgloss.Color("82"),
		},
	})
}

// NewStylesFromRegistry creates styles from the current bubbletint theme.
// Moods run from red (1) through yellow (3) to green (5).
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		danger:    r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		pillFg:    r.Bg(),
		pillBg:    r.Blue(),
		moods: [5]lipgloss.TerminalColor{
			r.Red(),
			r.BrightRed(),
			r.Yellow(),
			r.BrightGreen(),
			r.Green(),
		},
	})
}

func newStyles(p palette) Styles {
	s := Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		Title: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		Label: lipgloss.NewStyle().
			Foreground(p.muted),
		LabelFocused: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),
		MoodOption: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		Hint: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),

		EntryDate: lipgloss.NewStyle().
			Foreground(p.secondary),
		EntryContent: lipgloss.NewStyle().
			Foreground(p.fg).
			PaddingLeft(2),
		Pill: lipgloss.NewStyle().
			Foreground(p.pillFg).
			Background(p.pillBg).
			Padding(0, 1),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(p.danger),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
		Muted: lipgloss.NewStyle().
			Foreground(p.muted),
	}

	for i, c := range p.moods {
		s.Moods[i] = lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return s
}

// Mood returns the style for a mood value; out-of-range moods are muted.
func (s Styles) Mood(mood int) lipgloss.Style {
	if mood < 1 || mood > len(s.Moods) {
		return s.Muted
	}
	return s.Moods[mood-1]
}
