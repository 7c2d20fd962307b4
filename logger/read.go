package logger

import (
	"strings"
)

// Read returns the log file contents. A lineCount of zero returns the
// whole file byte for byte; a positive lineCount returns the last
// lineCount lines joined by "\n". Read never fails: an error is logged at
// Critical and an empty string is returned.
func (l *Logger) Read(lineCount int) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var (
		result string
		err    error
	)
	if lineCount == 0 {
		result, err = l.file.ReadAll()
	} else {
		var lines []string
		lines, err = l.file.Tail(lineCount)
		result = strings.Join(lines, "\n")
	}
	if err != nil {
		_ = l.logLocked(CriticalLevel, err.Error())
		return ""
	}
	return result
}

// ReadAll returns the entire log file, surfacing any error.
func (l *Logger) ReadAll() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.ReadAll()
}

// Tail returns the last lineCount physical lines of the log file in
// their original order, surfacing any error. A multi-line message counts
// once per line.
func (l *Logger) Tail(lineCount int) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Tail(lineCount)
}
