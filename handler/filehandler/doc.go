// Package filehandler provides the file sink.
//
// FileHandler opens the file in append mode, writes one rendered entry
// and closes it again on every Handle call, so several processes can
// share a log file and an external tool can delete or move it between
// writes. A failed append is retried according to a handler.RetryPolicy;
// once the attempts run out the error wraps handler.ErrRetriesExhausted.
//
// The handler also owns the read side of the file: ReadAll returns the
// raw contents and Tail returns the last N lines through package tail.
// Remove deletes the file and ignores a file that does not exist.
package filehandler
