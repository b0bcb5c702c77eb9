package domain

import "time"

// ConnectionStats holds statistics about one connection's sync.
type ConnectionStats struct {
	ConnectionID int64
	Provider     string
	Skipped      bool // not due this cycle
	Fetched      int
	Stored       int
	Duplicates   int
	Malformed    int
	Suppressed   int // stored with is_published=false
	Errors       int // per-item store failures
	Partial      bool
	Err          error
	Duration     time.Duration
}

// SyncStats aggregates one RunSync cycle over a stream.
type SyncStats struct {
	StreamID    int64
	Connections []ConnectionStats
	Duration    time.Duration
}

// Failed reports how many connections ended in error.
func (s *SyncStats) Failed() int {
	n := 0
	for _, c := range s.Connections {
		if c.Err != nil {
			n++
		}
	}
	return n
}

// Attempted reports how many connections were due and actually synced.
func (s *SyncStats) Attempted() int {
	n := 0
	for _, c := range s.Connections {
		if !c.Skipped {
			n++
		}
	}
	return n
}
