package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hakim/portwatch/internal/models"
	"github.com/hakim/portwatch/internal/portset"
	"github.com/hakim/portwatch/internal/procs"
	"github.com/hakim/portwatch/internal/report"
	"github.com/hakim/portwatch/internal/scan"
	"github.com/hakim/portwatch/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Repeatedly scan a port set and report state changes",
	Long: `Run scan passes on a fixed interval until interrupted.

Every completed pass is printed, and each port whose open state flips between
consecutive passes produces a discrete "state changed" line. Ownership churn
(a port staying open but changing PID) does not count as a state change.

Without --ports or --profile the built-in framework profile is watched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Get flags
		host, _ := cmd.Flags().GetString("host")
		portsExpr, _ := cmd.Flags().GetString("ports")
		profileName, _ := cmd.Flags().GetString("profile")
		timeoutMS, _ := cmd.Flags().GetInt("timeout")
		intervalSec, _ := cmd.Flags().GetInt("interval")
		jsonOut, _ := cmd.Flags().GetBool("json")
		openOnly, _ := cmd.Flags().GetBool("open-only")
		changesOnly, _ := cmd.Flags().GetBool("changes-only")

		if host == "" {
			host = cfg.Host
		}
		if timeoutMS <= 0 {
			timeoutMS = cfg.Probe.TimeoutMS
		}
		if intervalSec <= 0 {
			intervalSec = cfg.Watch.IntervalSeconds
		}

		// Step 2: Resolve and parse the port set. Watch defaults to the
		// built-in profile when nothing else is selected.
		expr, err := resolvePortsExpr(portsExpr, profileName, true)
		if err != nil {
			return err
		}
		ports, err := portset.Parse(expr)
		if err != nil {
			return exitWith(exitValidation, "%w", err)
		}

		var resolver procs.Resolver
		if scan.IsLoopback(host) {
			resolver = procs.System()
		}

		// Step 3: Build the session with reporting callbacks
		session := watch.NewSession(watch.Config{
			Interval: time.Duration(intervalSec) * time.Second,
			Ports:    ports,
			Scan: scan.Config{
				Host:        host,
				Timeout:     time.Duration(timeoutMS) * time.Millisecond,
				Concurrency: cfg.Probe.Concurrency,
				Resolver:    resolver,
			},
			OnSnapshot: func(snap *models.Snapshot) {
				if changesOnly {
					return
				}
				if jsonOut {
					report.WriteSnapshotJSON(os.Stdout, snap, openOnly)
					return
				}
				report.WriteSnapshotTable(os.Stdout, snap, openOnly)
			},
			OnChange: func(ev watch.Event) {
				if jsonOut {
					report.WriteEventJSON(os.Stdout, ev)
					return
				}
				report.WriteEvent(os.Stdout, ev)
			},
		})

		// Step 4: Run until interrupted
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if !jsonOut {
			fmt.Printf("[*] watching %d ports on %s every %ds (ctrl-c to stop)\n",
				len(ports), host, intervalSec)
		}

		session.Start()
		<-ctx.Done()
		session.Stop()

		if !jsonOut {
			fmt.Println("[*] watch session stopped")
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().String("host", "", "target host (default from config, 127.0.0.1)")
	watchCmd.Flags().StringP("ports", "p", "", `port expression, e.g. "3000-3009,8080"`)
	watchCmd.Flags().String("profile", "", "watch a stored profile by name")
	watchCmd.Flags().Int("timeout", 0, "per-probe timeout in milliseconds (default from config, 300)")
	watchCmd.Flags().Int("interval", 0, "seconds between passes (default from config, 3)")
	watchCmd.Flags().Bool("json", false, "emit JSON lines instead of tables")
	watchCmd.Flags().Bool("open-only", false, "only show open ports in snapshots")
	watchCmd.Flags().Bool("changes-only", false, "suppress full snapshots, print state changes only")

	rootCmd.AddCommand(watchCmd)
}
