//go:build darwin

package procs

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/hakim/portwatch/internal/tools"
)

// lookupTimeout bounds each external table enumeration so resolution can
// never stall a scan pass.
const lookupTimeout = 2 * time.Second

type systemResolver struct{}

// OwnerOfPort runs lsof once in field mode and scans its output for a
// listening socket on the given port.
//
// Output format: p<pid> lines followed by n<address:port> lines for that PID.
func (systemResolver) OwnerOfPort(port uint16) (uint32, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	result, err := tools.RunTool(ctx, "lsof", "-nP", "-iTCP", "-sTCP:LISTEN", "-F", "pn")
	if err != nil {
		// lsof exits non-zero when nothing matches; treat all failures
		// as "no owner" rather than surfacing the tool error.
		return 0, ErrOwnerNotFound
	}

	var currentPID uint32

	scanner := bufio.NewScanner(bytes.NewReader(result.Stdout))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 {
			continue
		}

		switch line[0] {
		case 'p':
			pid, err := strconv.ParseUint(line[1:], 10, 32)
			if err == nil {
				currentPID = uint32(pid)
			}
		case 'n':
			if currentPID != 0 && portFromAddr(line[1:]) == port {
				return currentPID, nil
			}
		}
	}

	return 0, ErrOwnerNotFound
}

// NameOfPID asks ps for the command name and reduces it to its basename.
func (systemResolver) NameOfPID(pid uint32) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	result, err := tools.RunTool(ctx, "ps", "-p", strconv.FormatUint(uint64(pid), 10), "-o", "comm=")
	if err != nil {
		return "", ErrNameUnavailable
	}

	name := strings.TrimSpace(string(result.Stdout))
	if name == "" {
		return "", ErrNameUnavailable
	}
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		name = name[idx+1:]
	}
	return name, nil
}
