package models

// OutcomeCode classifies the terminal result of a kill request.
type OutcomeCode string

const (
	CodeKilled            OutcomeCode = "KILLED"
	CodeKilledWithWarning OutcomeCode = "KILLED_WITH_WARNING"
	CodeBlockedMismatch   OutcomeCode = "BLOCKED_MISMATCH"
	CodeBlockedLookup     OutcomeCode = "BLOCKED_LOOKUP_FAILED"
	CodeOSError           OutcomeCode = "OS_ERROR"
	CodeArgError          OutcomeCode = "ARG_ERROR"
)

// KillRequest describes one process termination attempt. ExpectedName is the
// process name the caller believes owns the target PID; empty means the
// caller supplied none. AllowMismatch downgrades verification failures from a
// hard block to a warning. Force selects immediate termination over a
// graceful request.
type KillRequest struct {
	PID           uint32 `json:"pid"`
	ExpectedName  string `json:"expected_name,omitempty"`
	AllowMismatch bool   `json:"allow_mismatch"`
	Force         bool   `json:"force"`
}

// KillOutcome is the terminal result of exactly one kill request. It is never
// retried automatically: blocked and failed outcomes are final for that
// attempt.
type KillOutcome struct {
	OK      bool        `json:"ok"`
	Code    OutcomeCode `json:"code"`
	Message string      `json:"message"`
}
