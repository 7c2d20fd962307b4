package logger

import (
	"fmt"
	"os"
	"strings"
)

// isElevated reports whether the process runs with an effective uid of 0
var isElevated = func() bool {
	return os.Geteuid() == 0
}

// Setup replaces the configuration, deletes any existing file at the new
// path and writes a banner describing the configuration at Info. Zero
// fields of cfg take their defaults. A failure to delete the old file is
// ignored.
func (l *Logger) Setup(cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.configure(cfg); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	_ = l.file.Remove()

	return l.logLocked(InfoLevel, l.banner())
}

func (l *Logger) banner() string {
	var b strings.Builder
	b.WriteString("\n### LOGGER SETUP #####################\n")
	fmt.Fprintf(&b, "# FileName: %s\n", l.cfg.FileName)
	fmt.Fprintf(&b, "# FilePath: %s\n", l.cfg.FilePath)
	fmt.Fprintf(&b, "# LogLevel: %s\n", l.cfg.Level)
	fmt.Fprintf(&b, "# Output: %s\n", l.cfg.Output)
	fmt.Fprintf(&b, "# Elevated: %t\n", isElevated())
	b.WriteString("######################################")
	return b.String()
}
