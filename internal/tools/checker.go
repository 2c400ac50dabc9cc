package tools

import (
	"os/exec"
	"runtime"
)

// ToolRequirement represents a platform command the process resolver depends on.
type ToolRequirement struct {
	Name     string // Display name
	Binary   string // Executable name
	Required bool   // Whether resolution fails without it
	Purpose  string // One-line description
}

// CheckResult represents the result of checking a single tool.
type CheckResult struct {
	Tool  ToolRequirement
	Found bool
	Path  string
}

// PlatformTools returns the process-table commands the resolver shells out
// to on the current operating system. Linux reads /proc directly and needs
// no external commands.
func PlatformTools() []ToolRequirement {
	switch runtime.GOOS {
	case "windows":
		return []ToolRequirement{
			{
				Name:     "netstat",
				Binary:   "netstat",
				Required: true,
				Purpose:  "TCP socket to PID mapping",
			},
			{
				Name:     "tasklist",
				Binary:   "tasklist",
				Required: true,
				Purpose:  "PID to process name mapping",
			},
		}
	case "darwin":
		return []ToolRequirement{
			{
				Name:     "lsof",
				Binary:   "lsof",
				Required: true,
				Purpose:  "TCP socket to PID mapping",
			},
			{
				Name:     "ps",
				Binary:   "ps",
				Required: true,
				Purpose:  "PID to process name mapping",
			},
		}
	default:
		return nil
	}
}

// CheckTools checks all tools in the provided list.
func CheckTools(tools []ToolRequirement) []CheckResult {
	results := make([]CheckResult, len(tools))
	for i, tool := range tools {
		results[i] = CheckTool(tool)
	}
	return results
}

// CheckTool checks whether a single tool is available on PATH.
func CheckTool(tool ToolRequirement) CheckResult {
	result := CheckResult{Tool: tool}

	path, err := exec.LookPath(tool.Binary)
	if err != nil {
		return result
	}

	result.Found = true
	result.Path = path
	return result
}
