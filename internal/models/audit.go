package models

import (
	"time"

	"github.com/google/uuid"
)

// KillRecord is the persisted audit entry for one kill attempt, written
// regardless of whether the attempt succeeded, was blocked, or failed.
type KillRecord struct {
	ID           string      `json:"id"`
	PID          uint32      `json:"pid"`
	ExpectedName string      `json:"expected_name,omitempty"`
	Force        bool        `json:"force"`
	OK           bool        `json:"ok"`
	Code         OutcomeCode `json:"code"`
	Message      string      `json:"message"`
	At           time.Time   `json:"at"`
}

// NewKillRecord builds an audit record for a completed kill request.
func NewKillRecord(req KillRequest, outcome KillOutcome) *KillRecord {
	return &KillRecord{
		ID:           uuid.New().String(),
		PID:          req.PID,
		ExpectedName: req.ExpectedName,
		Force:        req.Force,
		OK:           outcome.OK,
		Code:         outcome.Code,
		Message:      outcome.Message,
		At:           time.Now(),
	}
}
