package logger

import (
	"github.com/philipp01105/filelog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	CriticalLevel = core.CriticalLevel
	ErrorLevel    = core.ErrorLevel
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	DebugLevel    = core.DebugLevel
)

// OutputMode Re-export type and constants for convenience
type OutputMode = core.OutputMode

const (
	OutputNone    = core.OutputNone
	OutputConsole = core.OutputConsole
)

// ParseLevel converts a level name or numeric rank to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// ParseOutputMode converts a mode name to an OutputMode
func ParseOutputMode(s string) (OutputMode, error) {
	return core.ParseOutputMode(s)
}
