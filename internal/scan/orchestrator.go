// Package scan fans port probes out over a port set with bounded concurrency
// and assembles ordered scan snapshots, resolving process owners for ports
// that turn out to be open.
package scan

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hakim/portwatch/internal/models"
	"github.com/hakim/portwatch/internal/probe"
	"github.com/hakim/portwatch/internal/procs"
)

// DefaultConcurrency caps simultaneously in-flight probes when the caller
// does not choose a bound. Keeps a large port set from exhausting ephemeral
// sockets or the per-process fd limit.
const DefaultConcurrency = 16

// Config holds the parameters for one scan pass.
type Config struct {
	// Host is the probe target. Defaults to 127.0.0.1 when empty.
	Host string
	// Timeout bounds each individual probe. Non-positive values fall back
	// to probe.DefaultTimeout.
	Timeout time.Duration
	// Concurrency bounds in-flight probes. Non-positive values fall back
	// to DefaultConcurrency.
	Concurrency int
	// Resolver looks up process owners for open ports. Nil disables owner
	// resolution (remote hosts have no local process table to consult).
	Resolver procs.Resolver
}

// Run probes every port in ports and returns a snapshot whose entries are in
// the same order as the input regardless of probe completion order. An empty
// port set yields an empty snapshot. Probe and resolution failures degrade
// into entry details; Run itself never fails.
func Run(ctx context.Context, ports []uint16, cfg Config) *models.Snapshot {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}

	snap := &models.Snapshot{
		Host:    cfg.Host,
		TakenAt: time.Now(),
		Entries: make([]models.ScanResultEntry, len(ports)),
	}
	if len(ports) == 0 {
		return snap
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency > len(ports) {
		concurrency = len(ports)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				snap.Entries[i] = scanOne(ctx, cfg, ports[i])
			}
		}()
	}

	for i := range ports {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return snap
}

// scanOne probes a single port and, when it is open, resolves the owning
// process. Resolution failures are recorded in the entry detail, never
// surfaced as errors.
func scanOne(ctx context.Context, cfg Config, port uint16) models.ScanResultEntry {
	if ctx.Err() != nil {
		return models.ScanResultEntry{Port: port, Detail: "scan cancelled"}
	}

	res := probe.Probe(cfg.Host, port, cfg.Timeout)
	entry := models.ScanResultEntry{
		Port:   port,
		Open:   res.Open,
		Detail: res.Detail,
	}
	if !entry.Open || cfg.Resolver == nil {
		return entry
	}

	pid, err := cfg.Resolver.OwnerOfPort(port)
	if err != nil {
		// Port answered the probe but nothing owns it now; the process
		// likely exited between probe and lookup. The port stays open.
		entry.Detail = "owner not found"
		return entry
	}
	entry.PID = &pid

	name, err := cfg.Resolver.NameOfPID(pid)
	if err != nil {
		entry.Detail = "process name unavailable"
		return entry
	}
	entry.ProcessName = name

	return entry
}

// IsLoopback reports whether host names the local machine. Owner resolution
// only makes sense for loopback targets.
func IsLoopback(host string) bool {
	h := strings.ToLower(strings.TrimSpace(host))
	return h == "127.0.0.1" || h == "localhost" || h == "::1"
}
