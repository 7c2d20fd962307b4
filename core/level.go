package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Level represents the severity of a log entry. Lower values are more
// severe; a message passes a minimum level when its rank is less than or
// equal to it.
type Level int8

const (
	// CriticalLevel for unrecoverable failures
	CriticalLevel Level = iota + 1
	// ErrorLevel for error messages
	ErrorLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// DebugLevel for detailed debugging information
	DebugLevel
)

// String returns the name written into the log line
func (l Level) String() string {
	switch l {
	case CriticalLevel:
		return "Critical"
	case ErrorLevel:
		return "Error"
	case InfoLevel:
		return "Info"
	case WarningLevel:
		return "Warning"
	case DebugLevel:
		return "Debug"
	default:
		return "Unknown"
	}
}

// Passes reports whether a message at l is persisted when the configured
// minimum level is min.
func (l Level) Passes(min Level) bool {
	return l <= min
}

// Echoes reports whether a message at l is mirrored to the debug and
// console sinks.
func (l Level) Echoes() bool {
	switch l {
	case CriticalLevel, ErrorLevel, DebugLevel:
		return true
	default:
		return false
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= CriticalLevel && l <= DebugLevel
}

// ParseLevel converts a level name or numeric rank to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical", "fatal":
		return CriticalLevel, nil
	case "error":
		return ErrorLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "debug":
		return DebugLevel, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if l := Level(n); l.Valid() {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("unknown log level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// OutputMode controls whether echoed lines are also printed to the console sink
type OutputMode uint8

const (
	// OutputNone keeps echoed lines on the debug sink only
	OutputNone OutputMode = iota
	// OutputConsole also prints echoed lines to the console sink
	OutputConsole
)

// String returns the string representation of the mode
func (m OutputMode) String() string {
	switch m {
	case OutputNone:
		return "None"
	case OutputConsole:
		return "Console"
	default:
		return "Unknown"
	}
}

// ParseOutputMode converts a mode name to an OutputMode. An empty string
// maps to OutputNone.
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return OutputNone, nil
	case "console":
		return OutputConsole, nil
	default:
		return 0, fmt.Errorf("unknown output mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (m OutputMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *OutputMode) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
