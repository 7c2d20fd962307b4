package logger

import (
	"fmt"
	"os"
	"runtime/debug"

	"go.uber.org/multierr"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// ExitError is returned by WriteError when ForceCloseOnError is set. The
// host application decides whether to exit with Code. Err holds the logged
// error combined with any failure to write it.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WriteError logs err at Critical and its detail at Debug. The detail is
// the %+v rendering when it carries more than Error(), otherwise the
// current goroutine's stack. With ForceCloseOnError set it also logs the
// exit code and returns an *ExitError that also carries any write errors;
// otherwise it returns the write errors, if any.
func (l *Logger) WriteError(err error) error {
	if err == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	writeErr := multierr.Combine(
		l.logLocked(CriticalLevel, err.Error()),
		l.logLocked(DebugLevel, errorDetail(err)),
	)
	if !l.cfg.ForceCloseOnError {
		return writeErr
	}

	writeErr = multierr.Append(writeErr,
		l.logLocked(CriticalLevel, fmt.Sprintf("Application exit code %d", l.cfg.ExitCode)))
	return &ExitError{Code: l.cfg.ExitCode, Err: multierr.Append(err, writeErr)}
}

// Fatal logs err like WriteError and exits the process with the
// configured exit code. A nil err is ignored.
func (l *Logger) Fatal(err error) {
	if err == nil {
		return
	}
	_ = l.WriteError(err)
	osExit(l.Config().ExitCode)
}

func errorDetail(err error) string {
	if detail := fmt.Sprintf("%+v", err); detail != err.Error() {
		return detail
	}
	return string(debug.Stack())
}
