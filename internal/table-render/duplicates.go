package tablerender

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	dupfinder "github.com/syntoxine/doubloon/internal/dup-finder"
)

// DuplicatesTitle heads the duplicates table
const DuplicatesTitle = "Duplicates"

// RenderDuplicates draws one row per duplicate path with a separator line between rows.
// Styles come from r so callers decide whether color reaches their writer.
func RenderDuplicates(rows []dupfinder.Row, r *lipgloss.Renderer) string {
	headerColor := lipgloss.Color("99")

	headerStyle := r.NewStyle().Bold(true).Foreground(headerColor)
	nameStyle := r.NewStyle().Foreground(lipgloss.Color("149"))
	cellStyle := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(headerColor)).
		BorderRow(true).
		Headers(headerStyle.Render("Name"), headerStyle.Render("Path")).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		})

	for _, row := range rows {
		t.Row(nameStyle.Render(row.Name), row.Path)
	}

	rendered := t.String()
	title := r.NewStyle().Bold(true).Italic(true).Render(DuplicatesTitle)
	return lipgloss.PlaceHorizontal(lipgloss.Width(rendered), lipgloss.Center, title) + "\n" + rendered
}
