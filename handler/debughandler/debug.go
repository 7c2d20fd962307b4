package debughandler

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/formatter"
	"github.com/philipp01105/filelog/handler"
)

// DebugConfig holds configuration for the debug handler
type DebugConfig struct {
	// Logger receives the rendered lines. When nil a logger writing bare
	// lines to Writer is built.
	Logger *zap.Logger
	// Writer used when Logger is nil (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// applyDebugDefaults fills in zero-value fields with defaults.
func applyDebugDefaults(cfg *DebugConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{OmitNewline: true})
	}
	if cfg.Logger == nil {
		if cfg.Writer == nil {
			cfg.Writer = os.Stderr
		}
		cfg.Logger = NewLineLogger(cfg.Writer)
	}
}

// NewLineLogger builds a zap logger that writes each message as a bare
// line with no timestamp, level or caller of its own. The message is
// already a rendered log line.
func NewLineLogger(w io.Writer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel))
}

// DebugHandler is the secondary diagnostic channel. It forwards rendered
// entries to a zap logger at the matching zap level.
type DebugHandler struct {
	logger    *zap.Logger
	formatter formatter.Formatter
	stats     *handler.Stats
}

// NewDebugHandler creates a new debug handler.
func NewDebugHandler(cfg DebugConfig) *DebugHandler {
	applyDebugDefaults(&cfg)
	return &DebugHandler{
		logger:    cfg.Logger,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
}

// Handle renders the entry and writes it to the zap logger.
func (h *DebugHandler) Handle(entry *core.Entry) error {
	line, err := formatter.Line(h.formatter, entry)
	if err != nil {
		return err
	}
	if ce := h.logger.Check(zapLevel(entry.Level), line); ce != nil {
		ce.Write()
	}
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *DebugHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes the zap logger. Sync errors from terminals and pipes are
// expected and ignored.
func (h *DebugHandler) Close() error {
	_ = h.logger.Sync()
	return nil
}

// zapLevel maps a core.Level to the zap level used for it. Critical maps
// to Error: zap's DPanic, Panic and Fatal levels have side effects.
func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.CriticalLevel, core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
