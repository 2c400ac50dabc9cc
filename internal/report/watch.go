package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hakim/portwatch/internal/watch"
)

// WriteEvent renders one state-change event as a single text line.
func WriteEvent(w io.Writer, ev watch.Event) {
	state := "CLOSED"
	if ev.Open {
		state = "OPEN"
	}
	fmt.Fprintf(w, "[!] state changed: port %d is now %s (%s)\n",
		ev.Port, state, ev.At.Format("15:04:05"))
}

// WriteEventJSON renders one state-change event as a JSON line.
func WriteEventJSON(w io.Writer, ev watch.Event) error {
	return json.NewEncoder(w).Encode(ev)
}
