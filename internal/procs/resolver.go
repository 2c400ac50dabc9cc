// Package procs resolves which process owns a listening TCP port and what
// that process is named. All lookups are best-effort: the owning process can
// exit between a probe and the lookup, and name resolution can fail
// independently of PID resolution.
package procs

import "errors"

var (
	// ErrOwnerNotFound means no process currently owns the port.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrNameUnavailable means the PID exists in no process table entry
	// with a readable name.
	ErrNameUnavailable = errors.New("process name unavailable")
)

// Resolver maps listening ports to owning processes. Implementations are
// platform-specific, bound their enumeration cost to a single pass over the
// system tables, and are safe for concurrent use.
type Resolver interface {
	// OwnerOfPort returns the PID of the process listening on port.
	// Returns ErrOwnerNotFound when the socket table has no owner for it.
	OwnerOfPort(port uint16) (uint32, error)

	// NameOfPID returns the executable name for pid.
	// Returns ErrNameUnavailable when the process table cannot name it.
	NameOfPID(pid uint32) (string, error)
}

// System returns the resolver for the host operating system.
func System() Resolver {
	return systemResolver{}
}
