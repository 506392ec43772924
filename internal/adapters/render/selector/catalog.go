package selector

import (
	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderCatalog draws the language list as a table in catalog order.
func RenderCatalog(entries []domain.LanguageEntry) string {
	s := newStyles()

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{string(entry.Code), entry.Flag, entry.Name})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.header).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.title.Padding(0, 1)
			}
			return s.language.Padding(0, 1)
		}).
		Headers("CODE", "FLAG", "LANGUAGE").
		Rows(rows...).
		Render()
}
