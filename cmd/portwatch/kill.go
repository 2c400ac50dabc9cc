package main

import (
	"fmt"

	"github.com/hakim/portwatch/internal/kill"
	"github.com/hakim/portwatch/internal/models"
	"github.com/hakim/portwatch/internal/procs"
	"github.com/spf13/cobra"
)

var killCmd = &cobra.Command{
	Use:   "kill",
	Short: "Terminate a process by PID under the safety policy",
	Long: `Terminate the process with the given PID.

The target's process name is re-resolved at the moment of the kill. When
--expected is supplied and the live name differs (or the lookup fails), the
kill is blocked unless --allow-mismatch downgrades the block to a warning.
Without --expected the kill proceeds with a reduced-safety warning: that is
the compatibility behavior for plain PID-only termination.

Termination is graceful by default; --force requests immediate termination.
The attempt and its outcome are recorded in the audit log (see 'portwatch
kills').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Get flags
		pid, _ := cmd.Flags().GetUint32("pid")
		expected, _ := cmd.Flags().GetString("expected")
		allowMismatch, _ := cmd.Flags().GetBool("allow-mismatch")
		force, _ := cmd.Flags().GetBool("force")
		yes, _ := cmd.Flags().GetBool("yes")

		// Step 2: Explicit confirmation gate. The core never prompts;
		// the caller must opt in up front.
		if cfg.Kill.RequireConfirmation && !yes {
			return exitWith(exitValidation, "refusing to kill pid %d without --yes", pid)
		}

		// Step 3: Verify and execute
		req := models.KillRequest{
			PID:           pid,
			ExpectedName:  expected,
			AllowMismatch: allowMismatch,
			Force:         force,
		}
		outcome := kill.Run(req, procs.System(), kill.SystemExecutor())

		// Step 4: Record the attempt in the audit log (best-effort)
		if store, err := openStore(); err == nil {
			if err := store.SaveKillRecord(models.NewKillRecord(req, outcome)); err != nil {
				fmt.Printf("[!] Warning: failed to record kill audit entry: %v\n", err)
			}
			store.Close()
		} else {
			fmt.Printf("[!] Warning: audit log unavailable: %v\n", err)
		}

		// Step 5: Report and map the outcome to an exit code
		switch outcome.Code {
		case models.CodeKilled:
			fmt.Printf("[+] %s\n", outcome.Message)
			return nil
		case models.CodeKilledWithWarning:
			fmt.Printf("[!] %s\n", outcome.Message)
			return nil
		case models.CodeBlockedMismatch, models.CodeBlockedLookup:
			return exitWith(exitBlocked, "kill blocked: %s", outcome.Message)
		case models.CodeArgError:
			return exitWith(exitValidation, "%s", outcome.Message)
		default:
			return exitWith(exitOSError, "kill failed: %s", outcome.Message)
		}
	},
}

func init() {
	killCmd.Flags().Uint32("pid", 0, "PID to terminate (required)")
	killCmd.Flags().String("expected", "", "expected process name; mismatches block the kill")
	killCmd.Flags().Bool("allow-mismatch", false, "proceed with a warning when verification fails")
	killCmd.Flags().Bool("force", false, "immediate termination instead of a graceful request")
	killCmd.Flags().Bool("yes", false, "confirm the kill (required)")

	killCmd.MarkFlagRequired("pid")

	rootCmd.AddCommand(killCmd)
}
