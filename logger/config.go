package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/handler"
)

const (
	// DefaultFileName is the log file name used when none is configured
	DefaultFileName = "log.txt"
	// DefaultExitCode is the exit code requested by WriteError and Fatal
	DefaultExitCode = 99
)

// Config holds the logger configuration
type Config struct {
	// FileName is the log file name (default: log.txt)
	FileName string
	// FilePath is the directory holding the log file (default: working directory)
	FilePath string
	// Level is the least severe level persisted to the file (default: Info)
	Level Level
	// Output selects whether echoed lines also go to the console (default: None)
	Output OutputMode
	// ForceCloseOnError makes WriteError request process exit through an *ExitError
	ForceCloseOnError bool
	// ExitCode is the exit code carried by *ExitError and used by Fatal (default: 99)
	ExitCode int
	// Retry bounds the attempts made for a failing file append
	Retry handler.RetryPolicy
}

// DefaultConfig returns the configuration a Logger starts with
func DefaultConfig() Config {
	return Config{
		FileName: DefaultFileName,
		FilePath: workingDir(),
		Level:    InfoLevel,
		Output:   OutputNone,
		ExitCode: DefaultExitCode,
		Retry:    handler.DefaultRetryPolicy(),
	}
}

// Path returns the full path of the log file
func (c Config) Path() string {
	return filepath.Join(c.FilePath, c.FileName)
}

// withDefaults fills in zero-value fields with defaults.
func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.FileName) == "" {
		c.FileName = DefaultFileName
	}
	if strings.TrimSpace(c.FilePath) == "" {
		c.FilePath = workingDir()
	}
	if c.Level == 0 {
		c.Level = InfoLevel
	}
	if c.ExitCode == 0 {
		c.ExitCode = DefaultExitCode
	}
	c.Retry = c.Retry.WithDefaults()
	return c
}

// Validate reports configuration values that cannot be used
func (c Config) Validate() error {
	if !c.Level.Valid() {
		return fmt.Errorf("invalid log level %d", int(c.Level))
	}
	if c.Output != core.OutputNone && c.Output != core.OutputConsole {
		return fmt.Errorf("invalid output mode %d", int(c.Output))
	}
	return nil
}

// LoadConfig reads a TOML configuration file. A missing file yields
// DefaultConfig; blank values fall back to their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		FileName          string `toml:"file_name"`
		FilePath          string `toml:"file_path"`
		Level             string `toml:"level"`
		Output            string `toml:"output"`
		ForceCloseOnError bool   `toml:"force_close_on_error"`
		ExitCode          int    `toml:"exit_code"`
		RetryAttempts     int    `toml:"retry_attempts"`
		RetryDelay        string `toml:"retry_delay"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if name := strings.TrimSpace(raw.FileName); name != "" {
		cfg.FileName = name
	}
	if dir := strings.TrimSpace(raw.FilePath); dir != "" {
		expanded, err := expandPath(dir)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.FilePath = expanded
	}
	if strings.TrimSpace(raw.Level) != "" {
		if cfg.Level, err = ParseLevel(raw.Level); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if cfg.Output, err = ParseOutputMode(raw.Output); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.ForceCloseOnError = raw.ForceCloseOnError
	if raw.ExitCode != 0 {
		cfg.ExitCode = raw.ExitCode
	}
	if raw.RetryAttempts > 0 {
		cfg.Retry.MaxAttempts = raw.RetryAttempts
	}
	if delay := strings.TrimSpace(raw.RetryDelay); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: retry_delay: %w", err)
		}
		cfg.Retry.Delay = d
	}

	return cfg, nil
}

func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
