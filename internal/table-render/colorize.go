package tablerender

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ColorScheme defines colors for different data types
type ColorScheme struct {
	StringColor    lipgloss.Color
	NumberColor    lipgloss.Color
	BoolTrueColor  lipgloss.Color
	BoolFalseColor lipgloss.Color
	NullColor      lipgloss.Color
}

// DefaultColorScheme returns a default set of colors
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		StringColor:    lipgloss.Color("149"), // Light green
		NumberColor:    lipgloss.Color("170"), // Orange
		BoolTrueColor:  lipgloss.Color("76"),  // Green
		BoolFalseColor: lipgloss.Color("203"), // Red
		NullColor:      lipgloss.Color("245"), // Gray
	}
}

// ShouldUseColor determines whether to render with color based on environment variables
// and whether out is a terminal
func ShouldUseColor(out io.Writer) bool {
	// Environment variables take precedence over TTY detection

	// Check if NO_COLOR is set (standard way to disable color)
	if noColor := os.Getenv("NO_COLOR"); noColor != "" {
		return false
	}

	// Check if CLICOLOR_FORCE is set (forces color even in non-TTY)
	if forceColor := os.Getenv("CLICOLOR_FORCE"); forceColor != "" {
		return true
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// FormatValueWithColor formats a value with appropriate coloring based on type
func FormatValueWithColor(value interface{}, scheme ColorScheme, useColor bool) string {
	if !useColor {
		return formatValue(value)
	}

	if value == nil {
		return lipgloss.NewStyle().Foreground(scheme.NullColor).Render("null")
	}

	switch v := value.(type) {
	case bool:
		if v {
			return lipgloss.NewStyle().Foreground(scheme.BoolTrueColor).Render(fmt.Sprintf("%v", v))
		}
		return lipgloss.NewStyle().Foreground(scheme.BoolFalseColor).Render(fmt.Sprintf("%v", v))

	case string:
		return lipgloss.NewStyle().Foreground(scheme.StringColor).Render(v)

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return lipgloss.NewStyle().Foreground(scheme.NumberColor).Render(fmt.Sprintf("%v", v))

	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatKeyValueDataWithColor formats a map to table rows with colored values
func FormatKeyValueDataWithColor(data map[string]interface{}, scheme ColorScheme, useColor bool) [][]string {
	rows := make([][]string, 0, len(data))

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	// Sort keys for deterministic order
	sort.Strings(keys)

	for _, key := range keys {
		rows = append(rows, []string{key, FormatValueWithColor(data[key], scheme, useColor)})
	}

	return rows
}
