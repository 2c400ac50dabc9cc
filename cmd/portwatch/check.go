package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/hakim/portwatch/internal/tools"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check process-table access for this platform",
	Long: `Verify that process owner resolution will work on this machine.

On macOS and Windows the resolver shells out to platform commands (lsof/ps,
netstat/tasklist); this command reports whether they are on PATH. On Linux
the resolver reads /proc directly, so the check verifies /proc is readable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Linux needs no external commands, just a readable /proc
		if runtime.GOOS == "linux" {
			if _, err := os.ReadDir("/proc"); err != nil {
				return fmt.Errorf("/proc is not readable: %w", err)
			}
			fmt.Println("[+] /proc is readable; owner resolution available")
			return nil
		}

		toolList := tools.PlatformTools()
		if len(toolList) == 0 {
			fmt.Printf("[!] Unsupported platform %s: ports will scan but owners cannot be resolved\n", runtime.GOOS)
			return nil
		}

		results := tools.CheckTools(toolList)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Tool\tStatus\tPath\tPurpose")
		fmt.Fprintln(w, "----\t------\t----\t-------")

		missing := 0
		for _, result := range results {
			status := "[-]"
			path := "-"
			if result.Found {
				status = "[+]"
				path = result.Path
			} else if result.Tool.Required {
				missing++
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", result.Tool.Name, status, path, result.Tool.Purpose)
		}
		w.Flush()

		fmt.Println()
		if missing > 0 {
			return fmt.Errorf("%d required platform command(s) missing; owner resolution will degrade", missing)
		}
		fmt.Println("All platform commands found; owner resolution available")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
