package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/uxgrep/uxgrep/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(76)
	absentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true)
)

// BoxDesignSystem renders the document as a stack of bordered category
// boxes for terminal display. Purely a projection; persistence uses the
// markdown form instead.
func BoxDesignSystem(ds *domain.DesignSystem) string {
	header := titleStyle.Render(fmt.Sprintf("%s — Design System", ds.Project))
	meta := metaStyle.Render(fmt.Sprintf("query: %s · generated: %s",
		ds.Query, ds.GeneratedAt.Format(time.RFC3339)))

	blocks := []string{header, meta}
	for _, sec := range ds.Categories {
		blocks = append(blocks, boxStyle.Render(renderSection(sec)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"
}

func renderSection(sec domain.CategorySection) string {
	var b strings.Builder
	b.WriteString(categoryStyle.Render(sec.Name))
	b.WriteString("\n")

	switch {
	case sec.Missing:
		b.WriteString(absentStyle.Render("corpus unavailable"))
	case len(sec.Entries) == 0:
		b.WriteString(absentStyle.Render("no matching guidance"))
	default:
		for i, entry := range sec.Entries {
			if i > 0 {
				b.WriteString("\n")
			}
			for _, field := range entryFields(sec.Columns, entry) {
				value := entry[field]
				if len([]rune(value)) > 120 {
					value = string([]rune(value)[:120]) + "..."
				}
				fmt.Fprintf(&b, "%s: %s\n", field, value)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
