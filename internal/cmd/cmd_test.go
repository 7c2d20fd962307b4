package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/philipp01105/filelog/core"
)

// executeCommand runs a fresh command tree with args and returns the
// captured output and error streams.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

// testArgs points the command at a temporary directory and a config file
// that does not exist.
func testArgs(t *testing.T, dir string, args ...string) []string {
	t.Helper()
	return append(args, "--dir", dir, "--config", filepath.Join(dir, "absent.toml"))
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd()
	if root.Use != "filelog" {
		t.Errorf("root.Use = %q, want %q", root.Use, "filelog")
	}

	cmdMap := make(map[string]bool)
	for _, c := range root.Commands() {
		cmdMap[c.Name()] = true
	}
	for _, expected := range []string{"tail", "write", "setup"} {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestWriteAndTail(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := executeCommand(t, testArgs(t, dir, "write", "--level", "error", "disk", "full")...)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(stderr, "[Error] disk full") {
		t.Errorf("Expected the error to be echoed, got %q", stderr)
	}

	if _, _, err := executeCommand(t, testArgs(t, dir, "write", "service", "started")...); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	stdout, _, err := executeCommand(t, testArgs(t, dir, "tail", "-n", "1")...)
	if err != nil {
		t.Fatalf("tail failed: %v", err)
	}
	if !strings.HasSuffix(stdout, "] [Info] service started\n") || strings.Count(stdout, "\n") != 1 {
		t.Errorf("tail -n 1 = %q", stdout)
	}

	stdout, _, err = executeCommand(t, testArgs(t, dir, "tail", "-n", "0")...)
	if err != nil {
		t.Fatalf("tail failed: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "log.txt"))
	if stdout != string(data) {
		t.Errorf("tail -n 0 = %q, want %q", stdout, data)
	}
}

func TestWrite_MinLevelFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FILELOG_LEVEL", "error")

	executeCommand(t, testArgs(t, dir, "write", "-l", "critical", "kept")...)
	executeCommand(t, testArgs(t, dir, "write", "-l", "warning", "dropped")...)

	stdout, _, err := executeCommand(t, testArgs(t, dir, "tail", "-n", "0")...)
	if err != nil {
		t.Fatalf("tail failed: %v", err)
	}
	if !strings.Contains(stdout, "[Critical] kept") || strings.Contains(stdout, "dropped") {
		t.Errorf("tail = %q", stdout)
	}
}

func TestWrite_FlagOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FILELOG_LEVEL", "critical")

	executeCommand(t, testArgs(t, dir, "write", "--min-level", "debug", "-l", "debug", "verbose")...)

	stdout, _, _ := executeCommand(t, testArgs(t, dir, "tail")...)
	if !strings.Contains(stdout, "[Debug] verbose") {
		t.Errorf("tail = %q", stdout)
	}
}

func TestWrite_InvalidLevel(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := executeCommand(t, testArgs(t, dir, "write", "-l", "loud", "x")...); err == nil {
		t.Error("Expected an error for an unknown level")
	}
	if _, _, err := executeCommand(t, testArgs(t, dir, "write")...); err == nil {
		t.Error("Expected an error without a message")
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	if err := os.Mkdir(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "filelog.toml")
	content := "file_name = \"custom.log\"\nfile_path = \"" + filepath.ToSlash(logDir) + "\"\noutput = \"console\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := executeCommand(t, "write", "--config", cfgPath, "-l", "error", "from config")
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(stdout, "[Error] from config") {
		t.Errorf("Expected console output, got %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(logDir, "custom.log")); err != nil {
		t.Errorf("Expected custom.log in the configured directory: %v", err)
	}

	stdout, _, err = executeCommand(t, "tail", "--config", cfgPath, "--file", "other.log")
	if err == nil {
		t.Errorf("Expected tail of a missing file to fail, got %q", stdout)
	}
}

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	executeCommand(t, testArgs(t, dir, "write", "stale")...)

	stdout, _, err := executeCommand(t, testArgs(t, dir, "setup")...)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if want := "log file reset: " + filepath.Join(dir, "log.txt") + "\n"; stdout != want {
		t.Errorf("setup output = %q, want %q", stdout, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, "log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") || !strings.Contains(string(data), "### LOGGER SETUP") {
		t.Errorf("log after setup = %q", data)
	}
}

func TestTail_InvalidCount(t *testing.T) {
	if _, _, err := executeCommand(t, testArgs(t, t.TempDir(), "tail", "-n", "-1")...); err == nil {
		t.Error("Expected an error for a negative count")
	}
}

func TestTail_Color(t *testing.T) {
	dir := t.TempDir()
	executeCommand(t, testArgs(t, dir, "write", "plain")...)

	// The output is not a terminal, so lipgloss renders without escapes.
	stdout, _, err := executeCommand(t, testArgs(t, dir, "tail", "--color")...)
	if err != nil {
		t.Fatalf("tail failed: %v", err)
	}
	if !strings.HasSuffix(stdout, "] [Info] plain\n") {
		t.Errorf("tail --color = %q", stdout)
	}
}

func TestLevelTag(t *testing.T) {
	tests := []struct {
		line      string
		wantTag   string
		wantLevel core.Level
		wantOK    bool
	}{
		{"[2026-01-15 12:00:00] [Error] boom", "[Error]", core.ErrorLevel, true},
		{"[2026-01-15 12:00:00] [Warning] a] [b", "[Warning]", core.WarningLevel, true},
		{"[2026-01-15 12:00:00] [Unknown] x", "", 0, false},
		{"continuation line", "", 0, false},
		{"[no tag", "", 0, false},
		{"", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			start, end, level, ok := levelTag(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("levelTag(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := tt.line[start:end]; got != tt.wantTag || level != tt.wantLevel {
				t.Errorf("levelTag(%q) = %q %v, want %q %v", tt.line, got, level, tt.wantTag, tt.wantLevel)
			}
		})
	}
}

func TestColorize_PlainWriter(t *testing.T) {
	lines := []string{"[2026-01-15 12:00:00] [Critical] down", "\tat main.go:1"}
	got := colorize(newLevelStyles(&bytes.Buffer{}), lines)
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("colorize() = %q, want unchanged %q", got, lines)
	}
}
