package filehandler

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/formatter"
	"github.com/philipp01105/filelog/handler"
	"github.com/philipp01105/filelog/tail"
)

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("file handler closed")

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Retry bounds the attempts made for a failing append (default: handler.DefaultRetryPolicy)
	Retry handler.RetryPolicy
	// Perm is the mode used when the file is created (default: 0644)
	Perm fs.FileMode
	// Sleep waits between retry attempts (default: time.Sleep)
	Sleep func(time.Duration)
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	cfg.Retry = cfg.Retry.WithDefaults()
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
}

// FileHandler appends each entry to a file. The file is opened, written
// and closed on every call; no handle is kept between writes.
type FileHandler struct {
	filename        string
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	retry           handler.RetryPolicy
	perm            fs.FileMode
	sleep           func(time.Duration)
	stats           *handler.Stats
	mu              sync.Mutex
	buf             bytes.Buffer
	closed          chan struct{}
}

// NewFileHandler creates a new file handler. The file itself is not
// touched until the first write.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	applyFileDefaults(&cfg)

	h := &FileHandler{
		filename:  cfg.Filename,
		formatter: cfg.Formatter,
		retry:     cfg.Retry,
		perm:      cfg.Perm,
		sleep:     cfg.Sleep,
		stats:     handler.NewStats(),
		closed:    make(chan struct{}),
	}
	// Cache BufferFormatter to render into the handler-owned buffer
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	return h, nil
}

// Filename returns the path the handler writes to
func (h *FileHandler) Filename() string {
	return h.filename
}

// Handle renders the entry and appends it to the file, retrying per the
// configured RetryPolicy.
func (h *FileHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		return ErrClosed
	default:
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatEntry(entry, &h.buf)
	} else {
		data, err := h.formatter.Format(entry)
		if err != nil {
			return err
		}
		h.buf.Write(data)
	}

	attempts, err := h.retry.Do(func() error {
		return h.appendOnce(h.buf.Bytes())
	}, h.sleep)
	if attempts > 1 {
		h.stats.AddRetried(uint64(attempts - 1))
	}
	if err != nil {
		h.stats.IncrementFailed()
		return fmt.Errorf("append to %s: %w", h.filename, err)
	}
	h.stats.IncrementProcessed()
	return nil
}

// appendOnce opens the file in append mode, writes data and closes it.
func (h *FileHandler) appendOnce(data []byte) (err error) {
	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, h.perm)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	_, err = file.Write(data)
	return err
}

// Remove deletes the log file. A missing file is not an error.
func (h *FileHandler) Remove() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.Remove(h.filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove log: %w", err)
	}
	return nil
}

// ReadAll returns the entire file contents.
func (h *FileHandler) ReadAll() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := os.ReadFile(h.filename)
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	return string(data), nil
}

// Tail returns the last n lines of the file in their original order.
func (h *FileHandler) Tail(n int) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return tail.File(h.filename, n)
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler from accepting further entries. There is no
// open file to release.
func (h *FileHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
