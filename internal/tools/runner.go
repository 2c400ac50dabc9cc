// Package tools runs the external platform commands the process resolver
// shells out to (lsof, ps, netstat, tasklist) and checks their availability.
package tools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// ToolResult contains the captured output of one command execution.
type ToolResult struct {
	Stdout   []byte
	Stderr   string
	ExitCode int
}

// RunTool executes a binary with the given arguments under ctx and returns
// its captured output. Stdout and stderr are drained concurrently so a
// chatty command cannot deadlock on a full pipe, and WaitDelay guarantees
// subprocess cleanup after context cancellation.
func RunTool(ctx context.Context, binary string, args ...string) (*ToolResult, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.WaitDelay = 5 * time.Second

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", binary, err)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	done := make(chan struct{}, 2)

	go func() {
		io.Copy(&stdoutBuf, stdoutPipe)
		done <- struct{}{}
	}()
	go func() {
		io.Copy(&stderrBuf, stderrPipe)
		done <- struct{}{}
	}()
	<-done
	<-done

	err = cmd.Wait()

	result := &ToolResult{
		Stdout:   stdoutBuf.Bytes(),
		Stderr:   stderrBuf.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if err != nil {
		if ctx.Err() != nil {
			return result, fmt.Errorf("%s cancelled: %w", binary, ctx.Err())
		}
		return result, fmt.Errorf("%s failed with exit code %d: %w", binary, result.ExitCode, err)
	}

	return result, nil
}
