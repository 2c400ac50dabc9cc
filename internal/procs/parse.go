package procs

import (
	"strconv"
	"strings"
)

// portFromAddr extracts the port from a socket-table local address.
// Handles "0.0.0.0:8080", "127.0.0.1:3000", "*:5173", and bracketed IPv6
// like "[::]:4200". Returns 0 when no port can be extracted.
func portFromAddr(addr string) uint16 {
	if addr == "" {
		return 0
	}

	// IPv6: the port follows the closing bracket.
	if end := strings.LastIndex(addr, "]"); end != -1 {
		rest := addr[end+1:]
		if p, ok := strings.CutPrefix(rest, ":"); ok {
			return parsePortText(p)
		}
		return 0
	}

	idx := strings.LastIndex(addr, ":")
	if idx == -1 {
		return 0
	}
	return parsePortText(addr[idx+1:])
}

func parsePortText(text string) uint16 {
	v, err := strconv.Atoi(text)
	if err != nil || v < 1 || v > 65535 {
		return 0
	}
	return uint16(v)
}
