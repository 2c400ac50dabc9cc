// Package watch repeats scan passes on a fixed interval and surfaces
// per-port state transitions between consecutive snapshots.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hakim/portwatch/internal/models"
	"github.com/hakim/portwatch/internal/scan"
)

// Event signals that a port's open state flipped between two consecutive
// passes. Changes in owning PID or process name alone never produce events.
type Event struct {
	Port uint16    `json:"port"`
	Open bool      `json:"open"` // the new state
	At   time.Time `json:"at"`
}

// Config holds the parameters for a watch session.
type Config struct {
	// Interval between scan passes. Values below one second are raised to
	// one second.
	Interval time.Duration
	// Ports is the normalized port set to watch.
	Ports []uint16
	// Scan configures each individual pass.
	Scan scan.Config
	// OnSnapshot, when set, receives a copy of every completed snapshot.
	OnSnapshot func(*models.Snapshot)
	// OnChange, when set, receives one event per port whose open state
	// flipped since the previous pass.
	OnChange func(Event)
}

// Session drives repeated scans of one port set. It owns the previous
// snapshot exclusively and replaces it atomically after each pass. The
// lifecycle is Idle (constructed) -> Running (Start) -> Stopped (Stop);
// there is no transition back to Idle.
type Session struct {
	id  string
	cfg Config

	mu      sync.Mutex
	running bool
	stopped bool
	prev    *models.Snapshot

	stop chan struct{}
	done chan struct{}
}

// NewSession builds an idle session. Start begins scanning.
func NewSession(cfg Config) *Session {
	if cfg.Interval < time.Second {
		cfg.Interval = time.Second
	}
	return &Session{
		id:   uuid.New().String(),
		cfg:  cfg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Start transitions the session from Idle to Running and launches the scan
// loop. Calling Start on a running or stopped session is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || s.stopped {
		return
	}
	s.running = true
	go s.loop()
}

// Stop cancels the timer and waits for an in-flight pass to complete.
// A stopped session cannot be restarted.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	if !wasRunning {
		close(s.done)
		return
	}
	close(s.stop)
	<-s.done
}

// Previous returns a copy of the last completed snapshot, or nil before the
// first pass finishes. The session retains sole ownership of its own copy.
func (s *Session) Previous() *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prev.Clone()
}

// loop runs one pass immediately and then one per interval tick. A tick that
// fires while a pass is still in flight is discarded, not queued, so at most
// one pass is ever in flight.
func (s *Session) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.runPass()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.runPass()
			// Drop a tick that accumulated while the pass ran.
			select {
			case <-ticker.C:
			default:
			}
		}
	}
}

// runPass executes one scan, reports the snapshot and any state changes, and
// replaces the previous snapshot.
func (s *Session) runPass() {
	snap := scan.Run(context.Background(), s.cfg.Ports, s.cfg.Scan)

	if s.cfg.OnSnapshot != nil {
		s.cfg.OnSnapshot(snap.Clone())
	}

	s.mu.Lock()
	prev := s.prev
	s.prev = snap
	s.mu.Unlock()

	if prev == nil || s.cfg.OnChange == nil {
		return
	}
	for _, ev := range diffOpenState(prev, snap) {
		s.cfg.OnChange(ev)
	}
}

// diffOpenState compares two snapshots port-by-port and returns one event
// for every port whose open value differs. Ports present in only one
// snapshot are ignored; the watched port set does not change mid-session.
func diffOpenState(prev, cur *models.Snapshot) []Event {
	prevOpen := make(map[uint16]bool, len(prev.Entries))
	for _, e := range prev.Entries {
		prevOpen[e.Port] = e.Open
	}

	var events []Event
	for _, e := range cur.Entries {
		before, seen := prevOpen[e.Port]
		if !seen || before == e.Open {
			continue
		}
		events = append(events, Event{Port: e.Port, Open: e.Open, At: cur.TakenAt})
	}
	return events
}
