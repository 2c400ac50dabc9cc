package main

import (
	"os"
	"time"

	"github.com/hakim/portwatch/internal/portset"
	"github.com/hakim/portwatch/internal/procs"
	"github.com/hakim/portwatch/internal/report"
	"github.com/hakim/portwatch/internal/scan"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a port set once and report occupancy",
	Long: `Run a single scan pass over a port set.

Each port gets one bounded-timeout TCP connect probe; open ports are resolved
to their owning process where the platform process table allows it. Results
are printed as a table (or JSON with --json) in ascending port order.

The port set comes from --ports, a stored --profile, or the built-in
framework default with --use-default.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Get flags
		host, _ := cmd.Flags().GetString("host")
		portsExpr, _ := cmd.Flags().GetString("ports")
		profileName, _ := cmd.Flags().GetString("profile")
		useDefault, _ := cmd.Flags().GetBool("use-default")
		timeoutMS, _ := cmd.Flags().GetInt("timeout")
		jsonOut, _ := cmd.Flags().GetBool("json")
		openOnly, _ := cmd.Flags().GetBool("open-only")

		if host == "" {
			host = cfg.Host
		}
		if timeoutMS <= 0 {
			timeoutMS = cfg.Probe.TimeoutMS
		}

		// Step 2: Resolve and parse the port set
		expr, err := resolvePortsExpr(portsExpr, profileName, useDefault)
		if err != nil {
			return err
		}
		ports, err := portset.Parse(expr)
		if err != nil {
			return exitWith(exitValidation, "%w", err)
		}

		// Step 3: Owner resolution only works against the local machine
		var resolver procs.Resolver
		if scan.IsLoopback(host) {
			resolver = procs.System()
		}

		// Step 4: Run the scan pass
		snap := scan.Run(cmd.Context(), ports, scan.Config{
			Host:        host,
			Timeout:     time.Duration(timeoutMS) * time.Millisecond,
			Concurrency: cfg.Probe.Concurrency,
			Resolver:    resolver,
		})

		// Step 5: Render
		if jsonOut {
			return report.WriteSnapshotJSON(os.Stdout, snap, openOnly)
		}
		report.WriteSnapshotTable(os.Stdout, snap, openOnly)

		return nil
	},
}

func init() {
	scanCmd.Flags().String("host", "", "target host (default from config, 127.0.0.1)")
	scanCmd.Flags().StringP("ports", "p", "", `port expression, e.g. "3000-3009,8080"`)
	scanCmd.Flags().String("profile", "", "scan a stored profile by name")
	scanCmd.Flags().Bool("use-default", false, "scan the built-in framework profile")
	scanCmd.Flags().Int("timeout", 0, "per-probe timeout in milliseconds (default from config, 300)")
	scanCmd.Flags().Bool("json", false, "emit JSON instead of a table")
	scanCmd.Flags().Bool("open-only", false, "only show open ports")

	rootCmd.AddCommand(scanCmd)
}
