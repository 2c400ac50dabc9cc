//go:build !windows

package kill

import "syscall"

type systemExecutor struct{}

// Execute sends SIGTERM for a graceful stop, SIGKILL when forced. One signal
// per request.
func (systemExecutor) Execute(pid uint32, force bool) error {
	sig := syscall.SIGTERM
	if force {
		sig = syscall.SIGKILL
	}
	return syscall.Kill(int(pid), sig)
}
