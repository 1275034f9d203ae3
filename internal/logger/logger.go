package logger

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Colors
var (
	errorColor = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnColor  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Valid log levels
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
	FatalLevel = "fatal"
	PanicLevel = "panic"
)

// New creates a logger writing to w at the given level
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           ParseLevel(level),
		Prefix:          "",
		ReportCaller:    false,
	})
}

// ParseLevel maps a level name to a charm log level, defaulting to info
func ParseLevel(level string) log.Level {
	switch level {
	case DebugLevel:
		return log.DebugLevel
	case InfoLevel:
		return log.InfoLevel
	case WarnLevel:
		return log.WarnLevel
	case ErrorLevel:
		return log.ErrorLevel
	case FatalLevel:
		return log.FatalLevel
	case PanicLevel:
		// Charm Bracelet logger doesn't have a panic level, use fatal instead
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetLevel sets the logging level of l based on a string
func SetLevel(l *log.Logger, level string) {
	l.SetLevel(ParseLevel(level))
}

// ErrorStyled logs an error message with custom styling
func ErrorStyled(l *log.Logger, msg string) {
	l.Error(errorColor.Render(msg))
}

// WarnStyled logs a warning message with custom styling and optional key/values
func WarnStyled(l *log.Logger, msg string, keyvals ...interface{}) {
	l.Warn(warnColor.Render(msg), keyvals...)
}
