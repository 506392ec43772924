package selector

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	slot      lipgloss.Style
	label     lipgloss.Style
	language  lipgloss.Style
	unknown   lipgloss.Style
	empty     lipgloss.Style
	ready     lipgloss.Style
	listening lipgloss.Style
	failed    lipgloss.Style
	detail    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		slot:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#374151")),
		language:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		unknown:   lipgloss.NewStyle().Faint(true),
		empty:     lipgloss.NewStyle().Faint(true),
		ready:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d4ed8")),
		listening: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#15803d")),
		failed:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
