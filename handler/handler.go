package handler

import (
	"github.com/philipp01105/filelog/core"
)

// Handler defines the interface for log sinks
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count what they process
type StatsProvider interface {
	Stats() Snapshot
}
