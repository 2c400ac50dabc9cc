// Package report renders scan snapshots and watch events for the command
// surface. Core packages never print; all presentation lives here.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hakim/portwatch/internal/models"
)

const separator = "──────────────────────────────────────────────────────────────────────────"

// maxDetailLen truncates long OS error messages in table output; JSON output
// keeps them verbatim.
const maxDetailLen = 48

// WriteSnapshotTable renders one snapshot as a formatted text table with a
// summary line. When openOnly is set, closed ports are omitted from the rows
// but still counted in the summary.
func WriteSnapshotTable(w io.Writer, snap *models.Snapshot, openOnly bool) {
	open := snap.OpenCount()
	closed := len(snap.Entries) - open

	fmt.Fprintf(w, "\nhost=%s | %s\n", snap.Host, snap.TakenAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "summary: OPEN=%d, CLOSED=%d\n", open, closed)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "  %-7s  %-7s  %-8s  %-18s  %s\n", "PORT", "STATE", "PID", "PROCESS", "DETAIL")
	fmt.Fprintln(w, separator)

	for _, e := range snap.Entries {
		if openOnly && !e.Open {
			continue
		}

		state := "CLOSED"
		if e.Open {
			state = "OPEN"
		}

		fmt.Fprintf(w, "  %-7d  %-7s  %-8s  %-18s  %s\n",
			e.Port, state, formatPID(e.PID), formatName(e.ProcessName), shortDetail(e.Detail))
	}

	fmt.Fprintln(w, separator)
}

// WriteSnapshotJSON renders the snapshot's entries as indented JSON.
func WriteSnapshotJSON(w io.Writer, snap *models.Snapshot, openOnly bool) error {
	entries := snap.Entries
	if openOnly {
		entries = make([]models.ScanResultEntry, 0, len(snap.Entries))
		for _, e := range snap.Entries {
			if e.Open {
				entries = append(entries, e)
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func formatPID(pid *uint32) string {
	if pid == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *pid)
}

func formatName(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

// shortDetail truncates a detail message for table display.
func shortDetail(detail string) string {
	if len(detail) <= maxDetailLen {
		return detail
	}
	return detail[:maxDetailLen-3] + "..."
}
