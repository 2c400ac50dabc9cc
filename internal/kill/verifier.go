// Package kill gates process termination behind identity verification and
// issues the platform termination call once verification authorizes it.
package kill

import (
	"fmt"
	"strings"

	"github.com/hakim/portwatch/internal/models"
	"github.com/hakim/portwatch/internal/procs"
)

// State is the verifier's verdict for one kill request.
type State int

const (
	// Authorized means the re-resolved process name matched the expected
	// name exactly.
	Authorized State = iota
	// AuthorizedWithWarning means termination proceeds but identity could
	// not be fully verified.
	AuthorizedWithWarning
	// Blocked means termination must not proceed.
	Blocked
)

// Decision is the outcome of verifying one kill request. Reason explains a
// warning or a block; BlockCode distinguishes the two block causes.
type Decision struct {
	State     State
	Reason    string
	BlockCode models.OutcomeCode
}

// Verify re-resolves the target PID's process name at the moment of the kill
// attempt and decides whether termination proceeds, proceeds with a warning,
// or is blocked. Verifying at action time narrows, but cannot eliminate, the
// window in which the PID is reused by an unrelated process.
//
// A request without an expected name is never hard-blocked: PID-only
// termination predates name verification and keeps working, flagged as
// reduced safety.
func Verify(req models.KillRequest, resolver procs.Resolver) Decision {
	expected := strings.TrimSpace(req.ExpectedName)
	actual, lookupErr := resolver.NameOfPID(req.PID)

	if expected == "" {
		reason := "no expected process name supplied; identity not verified"
		if req.AllowMismatch {
			reason = "mismatch allowed without an expected process name"
		}
		return Decision{State: AuthorizedWithWarning, Reason: reason}
	}

	if lookupErr != nil {
		if req.AllowMismatch {
			return Decision{
				State:  AuthorizedWithWarning,
				Reason: fmt.Sprintf("owner lookup failed for pid %d; proceeding on allow-mismatch", req.PID),
			}
		}
		return Decision{
			State:     Blocked,
			Reason:    "owner lookup failed",
			BlockCode: models.CodeBlockedLookup,
		}
	}

	if strings.EqualFold(strings.TrimSpace(actual), expected) {
		return Decision{State: Authorized}
	}

	if req.AllowMismatch {
		return Decision{
			State:  AuthorizedWithWarning,
			Reason: fmt.Sprintf("process name mismatch: expected %q, found %q", expected, actual),
		}
	}
	return Decision{
		State:     Blocked,
		Reason:    "process name mismatch",
		BlockCode: models.CodeBlockedMismatch,
	}
}
