package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	balance  lipgloss.Style
	hidden   lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	entryIn  lipgloss.Style
	entryOut lipgloss.Style
	when     lipgloss.Style
	kind     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		balance:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		hidden:   lipgloss.NewStyle().Faint(true),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		entryIn:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		entryOut: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		when:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		kind:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
