// Package handler provides the Handler interface shared by every log
// sink, plus the pieces that sit between a Logger and its sinks.
//
// Built-in sinks live in subpackages:
//
//   - filehandler appends each entry to a file, opening and closing the
//     file on every write, with a bounded RetryPolicy on failure.
//   - consolehandler writes entries to stdout or any io.Writer.
//   - debughandler forwards entries to a zap logger acting as the debug
//     channel.
//
// MultiHandler fans a single entry out to several sinks and combines
// their errors with multierr. SlogHandler adapts a Handler to
// log/slog.Handler so that a filelog Logger can serve as the backend of
// the standard library's structured logger.
//
// RetryPolicy replaces retry-until-success: a write is attempted
// MaxAttempts times with a growing delay, after which the aggregated
// error wraps ErrRetriesExhausted. Handlers count successes, retries and
// failures in Stats.
package handler
