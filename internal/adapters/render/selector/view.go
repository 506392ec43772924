package selector

import (
	"fmt"
	"strings"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Label prefixes each selector; empty means domain.DefaultSelectorLabel.
	Label string
	// ShowErrorDetail appends the engine error text after the badge.
	ShowErrorDetail bool
}

type Slot struct {
	Name  string
	State domain.LanguageSelectorState
}

func renderBoard(slots []Slot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Live Translation"),
		s.header.Render(fmt.Sprintf("participants: %d", len(slots))),
	}

	if len(slots) == 0 {
		lines = append(lines, s.empty.Render("No participants yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, slot := range slots {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.slot.Render(slot.Name),
			"  ",
			renderSelector(slot.State, opts, s),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSelector(state domain.LanguageSelectorState, opts RenderOptions, s styles) string {
	label := strings.TrimSpace(opts.Label)
	if label == "" {
		label = domain.DefaultSelectorLabel
	}

	language := s.language.Render(state.Label())
	if !state.Recognized() {
		language = s.unknown.Render(state.Label())
	}

	parts := []string{
		s.label.Render(label + ":"),
		" ",
		language,
	}

	if state.ShowBadge() {
		parts = append(parts, " ", renderBadge(state, s))
		if opts.ShowErrorDetail && state.Error != "" {
			parts = append(parts, " ", s.detail.Render(fmt.Sprintf("(%s)", state.Error)))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderBadge(state domain.LanguageSelectorState, s styles) string {
	badge := state.Badge()
	text := fmt.Sprintf("● %s", badge)

	switch badge {
	case domain.BadgeError:
		return s.failed.Render(text)
	case domain.BadgeListening:
		return s.listening.Render(text)
	default:
		return s.ready.Render(text)
	}
}
