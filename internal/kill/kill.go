package kill

import (
	"fmt"

	"github.com/hakim/portwatch/internal/models"
	"github.com/hakim/portwatch/internal/procs"
)

// Executor issues the platform termination call. Implementations make
// exactly one OS-level call per Execute; retries are the caller's choice.
type Executor interface {
	// Execute terminates pid. Graceful by default; force requests
	// immediate termination.
	Execute(pid uint32, force bool) error
}

// SystemExecutor returns the executor for the host operating system.
func SystemExecutor() Executor {
	return systemExecutor{}
}

// Run verifies and executes one kill request, always producing a terminal
// outcome. Distinct requests share no mutable state, so concurrent kills of
// different PIDs are independent.
func Run(req models.KillRequest, resolver procs.Resolver, executor Executor) models.KillOutcome {
	if req.PID == 0 {
		return models.KillOutcome{
			Code:    models.CodeArgError,
			Message: "invalid pid: 0",
		}
	}

	decision := Verify(req, resolver)
	if decision.State == Blocked {
		return models.KillOutcome{
			Code:    decision.BlockCode,
			Message: decision.Reason,
		}
	}

	if err := executor.Execute(req.PID, req.Force); err != nil {
		return models.KillOutcome{
			Code:    models.CodeOSError,
			Message: err.Error(),
		}
	}

	if decision.State == AuthorizedWithWarning {
		return models.KillOutcome{
			OK:      true,
			Code:    models.CodeKilledWithWarning,
			Message: fmt.Sprintf("killed pid %d (warning: %s)", req.PID, decision.Reason),
		}
	}
	return models.KillOutcome{
		OK:      true,
		Code:    models.CodeKilled,
		Message: fmt.Sprintf("killed pid %d", req.PID),
	}
}
