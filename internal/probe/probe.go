// Package probe performs single-attempt, bounded-timeout TCP connect probes
// against one (host, port) pair and classifies the outcome.
package probe

import (
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"
)

// DefaultTimeout bounds a probe when the caller supplies no usable timeout.
const DefaultTimeout = 300 * time.Millisecond

// Result classifies one probe attempt. Detail is "connection succeeded" for
// open ports, "connection refused" or "connection timed out" for the common
// closed cases, and the verbatim OS error message otherwise.
type Result struct {
	Open   bool   `json:"open"`
	Detail string `json:"detail"`
}

// Probe attempts one TCP handshake to host:port bounded by timeout.
// Non-positive timeouts fall back to DefaultTimeout. The transient connection
// is closed immediately on success; no retries happen at this layer.
func Probe(host string, port uint16, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	addr := net.JoinHostPort(host, strconv.Itoa(int(port)))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err == nil {
		conn.Close()
		return Result{Open: true, Detail: "connection succeeded"}
	}

	return Result{Open: false, Detail: classify(err)}
}

// classify maps a dial error onto the probe detail taxonomy.
func classify(err error) string {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "connection timed out"
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "connection refused"
	}
	return err.Error()
}
