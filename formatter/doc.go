// Package formatter defines how log entries are rendered into bytes.
//
// Every sink writes the same rendered line:
//
//	[2026-10-18 14:32:15] [Warning] disk usage above 90%
//
// Formatter returns a []byte, WriterFormatter writes directly to an
// io.Writer and BufferFormatter renders into a caller-owned
// bytes.Buffer. TextFormatter implements all three and uses a pooled
// buffer plus time.AppendFormat so the common path does not allocate an
// intermediate timestamp string. Level brackets are pre-computed.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line (a long stack trace, say) from permanently
// inflating memory usage.
package formatter
