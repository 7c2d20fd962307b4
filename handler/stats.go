package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts entries written successfully
	ProcessedTotal uint64
	// RetriedTotal counts extra attempts made after a failed write
	RetriedTotal uint64
	// FailedTotal counts entries given up on after every attempt failed
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// AddRetried atomically adds n to the retried counter
func (s *Stats) AddRetried(n uint64) {
	atomic.AddUint64(&s.RetriedTotal, n)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	RetriedTotal   uint64
	FailedTotal    uint64
}

// Add returns the sum of two snapshots
func (s Snapshot) Add(o Snapshot) Snapshot {
	return Snapshot{
		ProcessedTotal: s.ProcessedTotal + o.ProcessedTotal,
		RetriedTotal:   s.RetriedTotal + o.RetriedTotal,
		FailedTotal:    s.FailedTotal + o.FailedTotal,
	}
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: atomic.LoadUint64(&s.ProcessedTotal),
		RetriedTotal:   atomic.LoadUint64(&s.RetriedTotal),
		FailedTotal:    atomic.LoadUint64(&s.FailedTotal),
	}
}
