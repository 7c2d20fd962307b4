package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/filelog/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are skipped.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Stats sums the snapshots of every child that implements StatsProvider
func (h *MultiHandler) Stats() Snapshot {
	var total Snapshot
	for _, handler := range h.handlers {
		if sp, ok := handler.(StatsProvider); ok {
			total = total.Add(sp.Stats())
		}
	}
	return total
}

// Handle sends the entry to every handler. A failing handler does not
// stop the others; all errors are combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
