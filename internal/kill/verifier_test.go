package kill

import (
	"testing"

	"github.com/hakim/portwatch/internal/models"
	"github.com/hakim/portwatch/internal/procs"
)

// fakeResolver serves canned process names. PIDs absent from names fail
// lookup with ErrNameUnavailable.
type fakeResolver struct {
	names map[uint32]string
}

func (f fakeResolver) OwnerOfPort(port uint16) (uint32, error) {
	return 0, procs.ErrOwnerNotFound
}

func (f fakeResolver) NameOfPID(pid uint32) (string, error) {
	name, ok := f.names[pid]
	if !ok {
		return "", procs.ErrNameUnavailable
	}
	return name, nil
}

func TestVerify_DecisionTable(t *testing.T) {
	resolver := fakeResolver{names: map[uint32]string{
		100: "node",
		200: "python",
	}}

	tests := []struct {
		name      string
		req       models.KillRequest
		state     State
		blockCode models.OutcomeCode
	}{
		{
			name:  "no expected name proceeds with warning",
			req:   models.KillRequest{PID: 100},
			state: AuthorizedWithWarning,
		},
		{
			name:  "no expected name with allow-mismatch still warns",
			req:   models.KillRequest{PID: 100, AllowMismatch: true},
			state: AuthorizedWithWarning,
		},
		{
			name:  "matching name authorizes",
			req:   models.KillRequest{PID: 100, ExpectedName: "node"},
			state: Authorized,
		},
		{
			name:  "match ignores case and surrounding whitespace",
			req:   models.KillRequest{PID: 100, ExpectedName: "  NODE "},
			state: Authorized,
		},
		{
			name:      "mismatch blocks",
			req:       models.KillRequest{PID: 200, ExpectedName: "node"},
			state:     Blocked,
			blockCode: models.CodeBlockedMismatch,
		},
		{
			name:  "mismatch with allow-mismatch warns",
			req:   models.KillRequest{PID: 200, ExpectedName: "node", AllowMismatch: true},
			state: AuthorizedWithWarning,
		},
		{
			name:      "lookup failure blocks",
			req:       models.KillRequest{PID: 999, ExpectedName: "node"},
			state:     Blocked,
			blockCode: models.CodeBlockedLookup,
		},
		{
			name:  "lookup failure with allow-mismatch warns",
			req:   models.KillRequest{PID: 999, ExpectedName: "node", AllowMismatch: true},
			state: AuthorizedWithWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Verify(tt.req, resolver)
			if decision.State != tt.state {
				t.Fatalf("state = %v, want %v (reason %q)", decision.State, tt.state, decision.Reason)
			}
			if decision.State == Blocked && decision.BlockCode != tt.blockCode {
				t.Fatalf("block code = %q, want %q", decision.BlockCode, tt.blockCode)
			}
			if decision.State == AuthorizedWithWarning && decision.Reason == "" {
				t.Fatal("warning decisions must carry a reason")
			}
			if decision.State == Authorized && decision.Reason != "" {
				t.Fatalf("clean authorization must not carry a reason, got %q", decision.Reason)
			}
		})
	}
}
