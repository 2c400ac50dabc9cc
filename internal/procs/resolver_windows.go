//go:build windows

package procs

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hakim/portwatch/internal/tools"
)

// lookupTimeout bounds each external table enumeration so resolution can
// never stall a scan pass.
const lookupTimeout = 2 * time.Second

type systemResolver struct{}

// OwnerOfPort runs netstat once and scans for a LISTENING TCP socket bound
// to the given local port.
//
// netstat -ano -p tcp columns: proto, local addr, foreign addr, state, pid.
func (systemResolver) OwnerOfPort(port uint16) (uint32, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	result, err := tools.RunTool(ctx, "netstat", "-ano", "-p", "tcp")
	if err != nil {
		return 0, ErrOwnerNotFound
	}

	scanner := bufio.NewScanner(bytes.NewReader(result.Stdout))
	for scanner.Scan() {
		cols := strings.Fields(scanner.Text())
		if len(cols) < 5 || !strings.EqualFold(cols[3], "LISTENING") {
			continue
		}
		if portFromAddr(cols[1]) != port {
			continue
		}
		pid, err := strconv.ParseUint(cols[4], 10, 32)
		if err != nil || pid == 0 {
			continue
		}
		return uint32(pid), nil
	}

	return 0, ErrOwnerNotFound
}

// NameOfPID queries tasklist for the image name of a single PID.
func (systemResolver) NameOfPID(pid uint32) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	filter := fmt.Sprintf("PID eq %d", pid)
	result, err := tools.RunTool(ctx, "tasklist", "/FI", filter, "/FO", "CSV", "/NH")
	if err != nil {
		return "", ErrNameUnavailable
	}

	line := strings.TrimSpace(strings.Split(string(result.Stdout), "\n")[0])
	if line == "" || strings.Contains(line, "No tasks") {
		return "", ErrNameUnavailable
	}

	// CSV first field is the image name, quoted.
	name := strings.Trim(strings.Split(line, ",")[0], `" `)
	if name == "" {
		return "", ErrNameUnavailable
	}
	return name, nil
}
