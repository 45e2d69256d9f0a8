package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// ParseLevel translates a (case-insensitive) level name to a log level enum
func ParseLevel(name string) (int, error) {
	for level := TraceLevel; level <= FatalLevel; level++ {
		if strings.EqualFold(name, LogLevelToString(level)) {
			return level, nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", name)
}

func toZerolog(level int) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.TraceLevel
	}
}

// New returns a timestamped structured logger writing to w at the given level
func New(w io.Writer, level int) zerolog.Logger {
	return zerolog.New(w).Level(toZerolog(level)).With().Timestamp().Logger()
}

// NewConsole returns a human-readable logger writing to w at the given level
func NewConsole(w io.Writer, level int) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w}, level)
}
