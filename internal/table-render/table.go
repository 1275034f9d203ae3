package tablerender

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// DefaultMaxWidth is used when no positive table width is configured
const DefaultMaxWidth = 100

// Style configuration for consistent table rendering
type TableStyle struct {
	TotalWidth    int
	FirstColWidth int
	HeaderColor   lipgloss.Color
	TextColor     lipgloss.Color
	Title         string
}

// DefaultTableStyle returns the style settings for a table at most maxWidth wide
func DefaultTableStyle(maxWidth int) TableStyle {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	// Calculate first column width proportionally (40% of total)
	firstColWidth := maxWidth * 2 / 5

	return TableStyle{
		TotalWidth:    maxWidth,
		FirstColWidth: firstColWidth,
		HeaderColor:   lipgloss.Color("99"),  // Purple
		TextColor:     lipgloss.Color("245"), // Light gray
		Title:         "",
	}
}

// RenderTable renders a two column table with the provided data and styling
func RenderTable(headers []string, rows [][]string, style TableStyle) string {
	if style.TotalWidth <= 0 {
		style.TotalWidth = DefaultMaxWidth
	}
	if style.FirstColWidth <= 0 {
		style.FirstColWidth = style.TotalWidth * 2 / 5
	}
	if style.HeaderColor == "" {
		style.HeaderColor = lipgloss.Color("99") // Purple
	}
	if style.TextColor == "" {
		style.TextColor = lipgloss.Color("245") // Light gray
	}

	// Account for borders and padding
	secondColWidth := style.TotalWidth - style.FirstColWidth - 3

	columns := []table.Column{
		{Title: headers[0], Width: style.FirstColWidth},
		{Title: headers[1], Width: secondColWidth},
	}

	tableRows := []table.Row{}
	for _, row := range rows {
		tableRows = append(tableRows, table.Row{row[0], row[1]})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(false),
		// header row and its border take two lines
		table.WithHeight(len(tableRows)+2),
		table.WithWidth(style.TotalWidth),
	)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(style.HeaderColor).
		MarginBottom(1).
		MarginTop(1)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(style.HeaderColor).
		BorderBottom(true).
		Bold(true).
		Foreground(style.HeaderColor).
		Align(lipgloss.Center).
		Padding(0, 1)

	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Background(lipgloss.NoColor{}).
		Bold(false)

	s.Cell = s.Cell.
		Foreground(style.TextColor)

	t.SetStyles(s)

	borderStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(style.HeaderColor).
		BorderTop(true).
		BorderRight(true).
		BorderBottom(true).
		BorderLeft(true).
		Padding(0, 0)

	finalTable := borderStyle.Render(t.View())

	if style.Title != "" {
		title := titleStyle.Render(style.Title)
		return title + "\n" + finalTable
	}

	return finalTable
}

// formatValue formats a value for display
func formatValue(value interface{}) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
