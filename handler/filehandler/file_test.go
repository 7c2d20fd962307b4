package filehandler

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/handler"
)

var fixedTime = time.Date(2026, 3, 1, 8, 15, 0, 0, time.UTC)

func entry(level core.Level, msg string) *core.Entry {
	return &core.Entry{Time: fixedTime, Level: level, Message: msg}
}

func TestFileHandler_Append(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")

	h, err := NewFileHandler(FileConfig{Filename: filename})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if _, err := os.Stat(filename); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected no file before the first write, stat err = %v", err)
	}

	if err := h.Handle(entry(core.InfoLevel, "first")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if err := h.Handle(entry(core.ErrorLevel, "second")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	want := "[2026-03-01 08:15:00] [Info] first\n[2026-03-01 08:15:00] [Error] second\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}

	if got := h.Stats().ProcessedTotal; got != 2 {
		t.Errorf("ProcessedTotal = %d, want 2", got)
	}
}

func TestFileHandler_AppendsToExistingFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(filename, []byte("existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := NewFileHandler(FileConfig{Filename: filename})
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Handle(entry(core.InfoLevel, "appended")); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(filename)
	if !strings.HasPrefix(string(data), "existing\n") {
		t.Errorf("Expected existing content to be kept, got %q", data)
	}
}

func TestFileHandler_RetryExhausted(t *testing.T) {
	// A directory that does not exist makes every open fail.
	filename := filepath.Join(t.TempDir(), "missing", "test.log")

	var slept []time.Duration
	h, err := NewFileHandler(FileConfig{
		Filename: filename,
		Retry:    handler.RetryPolicy{MaxAttempts: 3, Delay: 5 * time.Millisecond},
		Sleep:    func(d time.Duration) { slept = append(slept, d) },
	})
	if err != nil {
		t.Fatal(err)
	}

	err = h.Handle(entry(core.CriticalLevel, "lost"))
	if !errors.Is(err, handler.ErrRetriesExhausted) {
		t.Fatalf("Handle() error = %v, want ErrRetriesExhausted", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected the open error to be wrapped, got %v", err)
	}
	if len(slept) != 2 {
		t.Errorf("Expected 2 sleeps between 3 attempts, got %v", slept)
	}

	stats := h.Stats()
	if stats.FailedTotal != 1 || stats.RetriedTotal != 2 || stats.ProcessedTotal != 0 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestFileHandler_RetryRecovers(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "late")
	filename := filepath.Join(dir, "test.log")

	h, err := NewFileHandler(FileConfig{
		Filename: filename,
		Retry:    handler.RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond},
		// The directory appears while the handler waits to retry.
		Sleep: func(time.Duration) { _ = os.MkdirAll(dir, 0755) },
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := h.Handle(entry(core.ErrorLevel, "recovered")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if got := h.Stats().RetriedTotal; got != 1 {
		t.Errorf("RetriedTotal = %d, want 1", got)
	}
}

func TestFileHandler_Remove(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")
	h, _ := NewFileHandler(FileConfig{Filename: filename})

	// Missing file is fine
	if err := h.Remove(); err != nil {
		t.Fatalf("Remove() on a missing file error = %v", err)
	}

	_ = h.Handle(entry(core.InfoLevel, "to be removed"))
	if err := h.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(filename); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected the file to be gone, stat err = %v", err)
	}
}

func TestFileHandler_ReadAllAndTail(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")
	h, _ := NewFileHandler(FileConfig{Filename: filename})

	for _, msg := range []string{"a", "b", "c", "d"} {
		if err := h.Handle(entry(core.InfoLevel, msg)); err != nil {
			t.Fatal(err)
		}
	}

	raw, err := h.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	onDisk, _ := os.ReadFile(filename)
	if raw != string(onDisk) {
		t.Errorf("ReadAll() = %q, want %q", raw, onDisk)
	}

	lines, err := h.Tail(2)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	want := []string{
		"[2026-03-01 08:15:00] [Info] c",
		"[2026-03-01 08:15:00] [Info] d",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Tail(2) = %v, want %v", lines, want)
	}
}

func TestFileHandler_ReadMissing(t *testing.T) {
	h, _ := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "none.log")})

	if _, err := h.ReadAll(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadAll() error = %v, want os.ErrNotExist", err)
	}
	if _, err := h.Tail(3); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Tail() error = %v, want os.ErrNotExist", err)
	}
}

func TestFileHandler_RequiresFilename(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); err == nil {
		t.Fatal("Expected an error for an empty filename")
	}
}

func TestFileHandler_Closed(t *testing.T) {
	h, _ := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "test.log")})

	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// Second close is a no-op
	if err := h.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if err := h.Handle(entry(core.InfoLevel, "late")); !errors.Is(err, ErrClosed) {
		t.Errorf("Handle() after Close error = %v, want ErrClosed", err)
	}
}
