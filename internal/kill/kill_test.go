package kill

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/hakim/portwatch/internal/models"
)

// recordingExecutor captures Execute calls instead of touching processes.
type recordingExecutor struct {
	mu    sync.Mutex
	calls []struct {
		pid   uint32
		force bool
	}
	err error
}

func (r *recordingExecutor) Execute(pid uint32, force bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, struct {
		pid   uint32
		force bool
	}{pid, force})
	return r.err
}

func (r *recordingExecutor) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestRun_ZeroPIDIsArgError(t *testing.T) {
	executor := &recordingExecutor{}
	resolver := fakeResolver{names: map[uint32]string{}}

	outcome := Run(models.KillRequest{PID: 0}, resolver, executor)
	if outcome.OK || outcome.Code != models.CodeArgError {
		t.Fatalf("outcome = %+v, want ARG_ERROR", outcome)
	}
	if executor.callCount() != 0 {
		t.Fatal("argument errors must not reach the executor")
	}
}

func TestRun_BlockedRequestNeverReachesExecutor(t *testing.T) {
	executor := &recordingExecutor{}
	resolver := fakeResolver{names: map[uint32]string{100: "python"}}

	outcome := Run(models.KillRequest{PID: 100, ExpectedName: "node"}, resolver, executor)
	if outcome.OK || outcome.Code != models.CodeBlockedMismatch {
		t.Fatalf("outcome = %+v, want BLOCKED_MISMATCH", outcome)
	}
	if executor.callCount() != 0 {
		t.Fatal("blocked requests must not reach the executor")
	}
}

func TestRun_MatchKillsCleanly(t *testing.T) {
	executor := &recordingExecutor{}
	resolver := fakeResolver{names: map[uint32]string{100: "node"}}

	outcome := Run(models.KillRequest{PID: 100, ExpectedName: "node"}, resolver, executor)
	if !outcome.OK || outcome.Code != models.CodeKilled {
		t.Fatalf("outcome = %+v, want KILLED", outcome)
	}
	if executor.callCount() != 1 {
		t.Fatalf("executor called %d times, want 1", executor.callCount())
	}
	if executor.calls[0].force {
		t.Fatal("default request must be graceful")
	}
}

func TestRun_WarningOutcomeCarriesReason(t *testing.T) {
	executor := &recordingExecutor{}
	resolver := fakeResolver{names: map[uint32]string{100: "node"}}

	outcome := Run(models.KillRequest{PID: 100}, resolver, executor)
	if !outcome.OK || outcome.Code != models.CodeKilledWithWarning {
		t.Fatalf("outcome = %+v, want KILLED_WITH_WARNING", outcome)
	}
	if !strings.Contains(outcome.Message, "warning") {
		t.Fatalf("message %q should surface the warning", outcome.Message)
	}
}

func TestRun_ForcePassesThrough(t *testing.T) {
	executor := &recordingExecutor{}
	resolver := fakeResolver{names: map[uint32]string{100: "node"}}

	Run(models.KillRequest{PID: 100, ExpectedName: "node", Force: true}, resolver, executor)
	if executor.callCount() != 1 || !executor.calls[0].force {
		t.Fatalf("force flag not forwarded: %+v", executor.calls)
	}
}

func TestRun_ExecutorErrorIsOSError(t *testing.T) {
	executor := &recordingExecutor{err: errors.New("operation not permitted")}
	resolver := fakeResolver{names: map[uint32]string{100: "node"}}

	outcome := Run(models.KillRequest{PID: 100, ExpectedName: "node"}, resolver, executor)
	if outcome.OK || outcome.Code != models.CodeOSError {
		t.Fatalf("outcome = %+v, want OS_ERROR", outcome)
	}
	if !strings.Contains(outcome.Message, "not permitted") {
		t.Fatalf("message %q should carry the OS error text", outcome.Message)
	}
}

func TestRun_ConcurrentRequestsAreIndependent(t *testing.T) {
	executor := &recordingExecutor{}
	resolver := fakeResolver{names: map[uint32]string{
		100: "node",
		101: "node",
		102: "node",
		103: "node",
	}}

	var wg sync.WaitGroup
	for pid := uint32(100); pid <= 103; pid++ {
		wg.Add(1)
		go func(pid uint32) {
			defer wg.Done()
			outcome := Run(models.KillRequest{PID: pid, ExpectedName: "node"}, resolver, executor)
			if !outcome.OK || outcome.Code != models.CodeKilled {
				t.Errorf("pid %d: outcome = %+v, want KILLED", pid, outcome)
			}
		}(pid)
	}
	wg.Wait()

	if executor.callCount() != 4 {
		t.Fatalf("executor called %d times, want 4", executor.callCount())
	}
}
