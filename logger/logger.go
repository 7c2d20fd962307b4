package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/formatter"
	"github.com/philipp01105/filelog/handler"
	"github.com/philipp01105/filelog/handler/consolehandler"
	"github.com/philipp01105/filelog/handler/debughandler"
	"github.com/philipp01105/filelog/handler/filehandler"
)

// Logger writes leveled lines to a file and echoes the severe ones to the
// debug and console sinks. It is safe for concurrent use; every operation
// runs synchronously under one lock.
type Logger struct {
	mu        sync.Mutex
	cfg       Config
	formatter *formatter.TextFormatter
	file      *filehandler.FileHandler
	debug     handler.Handler
	console   handler.Handler
	echo      *handler.MultiHandler
	now       func() time.Time
	sleep     func(time.Duration)
	last      string
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	cfg     Config
	debug   handler.Handler
	console handler.Handler
	now     func() time.Time
	sleep   func(time.Duration)
}

// NewBuilder creates a new logger builder starting from DefaultConfig
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
		now: time.Now,
	}
}

// WithConfig replaces the whole configuration
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// WithFile sets the directory and name of the log file
func (b *Builder) WithFile(filePath, fileName string) *Builder {
	b.cfg.FilePath = filePath
	b.cfg.FileName = fileName
	return b
}

// WithLevel sets the minimum level persisted to the file
func (b *Builder) WithLevel(level Level) *Builder {
	b.cfg.Level = level
	return b
}

// WithOutput sets the output mode
func (b *Builder) WithOutput(mode OutputMode) *Builder {
	b.cfg.Output = mode
	return b
}

// WithRetry sets the retry policy for failing appends
func (b *Builder) WithRetry(p handler.RetryPolicy) *Builder {
	b.cfg.Retry = p
	return b
}

// WithDebugHandler replaces the debug sink
func (b *Builder) WithDebugHandler(h handler.Handler) *Builder {
	b.debug = h
	return b
}

// WithZap routes the debug sink to an existing zap logger
func (b *Builder) WithZap(z *zap.Logger) *Builder {
	b.debug = debughandler.NewDebugHandler(debughandler.DebugConfig{Logger: z})
	return b
}

// WithConsoleWriter sets where the console sink prints (default: os.Stdout)
func (b *Builder) WithConsoleWriter(w io.Writer) *Builder {
	b.console = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: w})
	return b
}

// WithClock sets the time source used to stamp lines
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithSleep sets how the logger waits between retry attempts (default: time.Sleep)
func (b *Builder) WithSleep(sleep func(time.Duration)) *Builder {
	b.sleep = sleep
	return b
}

// WithCoarseClock stamps lines from core.CoarseNow instead of time.Now
func (b *Builder) WithCoarseClock() *Builder {
	core.StartCoarseClock()
	b.now = core.CoarseNow
	return b
}

// Build creates the Logger instance. No file is touched until the first
// write; use Setup to start from an empty file.
func (b *Builder) Build() (*Logger, error) {
	cfg := b.cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Logger{
		formatter: formatter.NewTextFormatter(formatter.Config{}),
		debug:     b.debug,
		console:   b.console,
		now:       b.now,
		sleep:     b.sleep,
	}
	if l.now == nil {
		l.now = time.Now
	}
	if l.debug == nil {
		l.debug = debughandler.NewDebugHandler(debughandler.DebugConfig{})
	}
	if l.console == nil {
		l.console = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})
	}

	if err := l.configure(cfg); err != nil {
		return nil, err
	}
	return l, nil
}

// configure swaps in cfg and the file and echo sinks derived from it.
// The caller holds l.mu or owns l exclusively.
func (l *Logger) configure(cfg Config) error {
	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Filename:  cfg.Path(),
		Formatter: l.formatter,
		Retry:     cfg.Retry,
		Sleep:     l.sleep,
	})
	if err != nil {
		return err
	}
	if l.file != nil {
		_ = l.file.Close()
	}

	l.cfg = cfg
	l.file = fh
	if cfg.Output == OutputConsole {
		l.echo = handler.NewMultiHandler(l.debug, l.console)
	} else {
		l.echo = handler.NewMultiHandler(l.debug)
	}
	return nil
}

// Config returns a copy of the active configuration
func (l *Logger) Config() Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg
}

// Last returns the most recently rendered line, whether or not it passed
// the file filter.
func (l *Logger) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

// Stats returns the file sink's counters
func (l *Logger) Stats() handler.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Stats()
}

// EchoStats returns the combined counters of the active echo sinks
func (l *Logger) EchoStats() handler.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.echo.Stats()
}

// Log writes msg at level. The line is appended to the file when level
// passes the configured minimum, and echoed when level is Critical, Error
// or Debug. The returned error comes from the file append only.
func (l *Logger) Log(level Level, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logLocked(level, msg)
}

// Handle makes Logger a handler.Handler, so it can back a
// handler.SlogHandler. The entry's own time is kept.
func (l *Logger) Handle(entry *core.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.log(entry)
}

func (l *Logger) logLocked(level Level, msg string) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Time = l.now()
	entry.Level = level
	entry.Message = msg
	return l.log(entry)
}

// log is the write path. The caller holds l.mu.
func (l *Logger) log(entry *core.Entry) error {
	if line, err := formatter.Line(l.formatter, entry); err == nil {
		l.last = line
	}

	var writeErr error
	if entry.Level.Passes(l.cfg.Level) {
		writeErr = l.file.Handle(entry)
	}

	if entry.Level.Echoes() {
		_ = l.echo.Handle(entry)
	}

	if writeErr != nil {
		l.reportWriteFailure(entry.Time, writeErr)
	}
	return writeErr
}

// reportWriteFailure sends a Critical line about a failed append to the
// echo sinks. It never goes back to the file.
func (l *Logger) reportWriteFailure(t time.Time, err error) {
	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Time = t
	entry.Level = CriticalLevel
	entry.Message = fmt.Sprintf("failed to write log file %s: %v", l.file.Filename(), err)
	_ = l.echo.Handle(entry)
}

// Logf writes a formatted message at level
func (l *Logger) Logf(level Level, format string, args ...interface{}) error {
	return l.Log(level, fmt.Sprintf(format, args...))
}

// Write implements io.Writer, logging p at Info with one trailing newline
// removed. It lets the standard log package write through the Logger.
func (l *Logger) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if err := l.Log(InfoLevel, msg); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Critical logs a critical message
func (l *Logger) Critical(msg string) {
	_ = l.Log(CriticalLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	_ = l.Log(ErrorLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	_ = l.Log(InfoLevel, msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) {
	_ = l.Log(WarningLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	_ = l.Log(DebugLevel, msg)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	_ = l.Log(CriticalLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	_ = l.Log(ErrorLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	_ = l.Log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	_ = l.Log(WarningLevel, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	_ = l.Log(DebugLevel, fmt.Sprintf(format, args...))
}

// Close closes the logger's sinks
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return multierr.Combine(l.file.Close(), l.debug.Close(), l.console.Close())
}
