// Package portset parses port expressions like "3000-3009,8080" into
// normalized port sequences: ascending, deduplicated, 1..65535.
package portset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PortRange is an inclusive range of port numbers with Start <= End.
type PortRange struct {
	Start uint16 `json:"start"`
	End   uint16 `json:"end"`
}

// Parse turns a port expression into a sorted, deduplicated slice of ports.
// Supported forms:
//   - single: "8080"
//   - list: "3000,8080"
//   - range: "3000-3009"
//   - mixed: "3000-3009, 8080" (commas and whitespace both separate tokens)
//
// Any malformed token fails the whole expression; overlapping ranges are
// merged by deduplication.
func Parse(expr string) ([]uint16, error) {
	tokens := strings.FieldsFunc(expr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty port expression")
	}

	seen := make(map[uint16]struct{})

	for _, token := range tokens {
		token = strings.TrimSpace(token)

		if start, end, ok := strings.Cut(token, "-"); ok {
			r, err := parseRange(start, end)
			if err != nil {
				return nil, fmt.Errorf("invalid ports: %q: %w", token, err)
			}
			for p := int(r.Start); p <= int(r.End); p++ {
				seen[uint16(p)] = struct{}{}
			}
			continue
		}

		port, err := parsePort(token)
		if err != nil {
			return nil, fmt.Errorf("invalid ports: %q: %w", token, err)
		}
		seen[port] = struct{}{}
	}

	out := make([]uint16, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// parseRange validates the two halves of a "start-end" token.
func parseRange(start, end string) (PortRange, error) {
	s, err := parsePort(strings.TrimSpace(start))
	if err != nil {
		return PortRange{}, err
	}
	e, err := parsePort(strings.TrimSpace(end))
	if err != nil {
		return PortRange{}, err
	}
	if s > e {
		return PortRange{}, fmt.Errorf("range start %d greater than end %d", s, e)
	}
	return PortRange{Start: s, End: e}, nil
}

// parsePort parses a single port token and rejects 0 and values above 65535.
func parsePort(token string) (uint16, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("not a port number")
	}
	if v < 1 || v > 65535 {
		return 0, fmt.Errorf("port must be in 1..65535")
	}
	return uint16(v), nil
}
