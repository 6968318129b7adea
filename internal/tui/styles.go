package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

type styles struct {
	title    lipgloss.Style
	section  lipgloss.Style
	cursor   lipgloss.Style
	item     lipgloss.Style
	muted    lipgloss.Style
	focused  lipgloss.Style
	option   lipgloss.Style
	classes  lipgloss.Style
	errorMsg lipgloss.Style
}

// stylesFor picks a palette for the resolved theme; "" (not yet mounted)
// uses the light palette.
func stylesFor(resolved string) styles {
	accent, text, dim := lipgloss.Color("205"), lipgloss.Color("236"), lipgloss.Color("244")
	if resolved == theme.Dark {
		accent, text, dim = lipgloss.Color("213"), lipgloss.Color("252"), lipgloss.Color("240")
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		item:     lipgloss.NewStyle().Foreground(text),
		muted:    lipgloss.NewStyle().Foreground(dim),
		focused:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent),
		option:   lipgloss.NewStyle().Foreground(text),
		classes:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		errorMsg: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}
