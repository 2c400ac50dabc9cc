//go:build windows

package kill

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hakim/portwatch/internal/tools"
)

type systemExecutor struct{}

// Execute runs taskkill against the PID. Without /F taskkill posts a close
// request to the target's windows; /F terminates immediately.
func (systemExecutor) Execute(pid uint32, force bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	args := []string{"/PID", strconv.FormatUint(uint64(pid), 10)}
	if force {
		args = append(args, "/F")
	}

	result, err := tools.RunTool(ctx, "taskkill", args...)
	if err != nil {
		if result != nil {
			if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
				return fmt.Errorf("taskkill failed: %s", stderr)
			}
		}
		return fmt.Errorf("taskkill failed: %w", err)
	}
	return nil
}
