package reply

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prompt  lipgloss.Style
	status  lipgloss.Style
	warning lipgloss.Style
	title   lipgloss.Style
	detail  lipgloss.Style
	code    lipgloss.Style
	meta    lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		status:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		title:   lipgloss.NewStyle().Bold(true),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		code: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("238")).
			PaddingLeft(1),
		meta:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty: lipgloss.NewStyle().Faint(true),
	}
}
