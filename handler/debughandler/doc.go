// Package debughandler provides the debug sink, a diagnostic channel
// separate from the console. Entries are rendered with the same text
// formatter as the file and handed to a go.uber.org/zap logger, either
// one supplied by the host application or a bare-line logger writing to
// stderr.
package debughandler
