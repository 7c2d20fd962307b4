package handler

import (
	"errors"
	"sync"

	"github.com/philipp01105/filelog/core"
)

// recordingHandler keeps a copy of every entry it handles
type recordingHandler struct {
	mu      sync.Mutex
	entries []core.Entry
	err     error
	closed  bool
}

func (r *recordingHandler) Handle(entry *core.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return r.err
}

func (r *recordingHandler) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return r.err
}

func (r *recordingHandler) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Message
	}
	return out
}

var errSink = errors.New("sink failed")
