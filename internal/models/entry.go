// Package models defines the data types exchanged between the scan, watch,
// and kill components: per-port scan results, immutable scan snapshots, kill
// requests, and terminal kill outcomes.
package models

import "time"

// ScanResultEntry describes the observed state of a single TCP port at the
// moment of one scan pass. PID and ProcessName are populated only when the
// port was open and owner resolution succeeded. Detail carries a
// human-readable classification of the probe or resolution outcome.
type ScanResultEntry struct {
	Port        uint16  `json:"port"`
	Open        bool    `json:"open"`
	PID         *uint32 `json:"pid,omitempty"`
	ProcessName string  `json:"process_name,omitempty"`
	Detail      string  `json:"detail"`
}

// Snapshot is the complete, ordered result of one scan pass. Entries appear
// in ascending port order regardless of probe completion order. A snapshot is
// never mutated after construction; a new pass produces a new snapshot.
type Snapshot struct {
	Host    string            `json:"host"`
	TakenAt time.Time         `json:"taken_at"`
	Entries []ScanResultEntry `json:"entries"`
}

// Clone returns a deep copy of the snapshot so it can be handed across an
// ownership boundary without aliasing the original entry slice.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		Host:    s.Host,
		TakenAt: s.TakenAt,
		Entries: make([]ScanResultEntry, len(s.Entries)),
	}
	copy(out.Entries, s.Entries)
	for i, e := range s.Entries {
		if e.PID != nil {
			pid := *e.PID
			out.Entries[i].PID = &pid
		}
	}
	return out
}

// OpenCount returns the number of entries observed open in this pass.
func (s *Snapshot) OpenCount() int {
	n := 0
	for _, e := range s.Entries {
		if e.Open {
			n++
		}
	}
	return n
}
