package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var killsCmd = &cobra.Command{
	Use:   "kills",
	Short: "Show the kill audit log",
	Long: `Display a formatted table of past kill attempts, newest first.

Each row shows the attempt ID (truncated), when it ran, the target PID, the
outcome code, and the outcome message. Blocked and failed attempts are
recorded alongside successful ones.

Use --limit to cap the number of rows shown (default: 10).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Get flags
		limit, _ := cmd.Flags().GetInt("limit")

		// Step 2: Open bbolt store
		store, err := openStore()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		// Step 3: List records (newest-first by key order)
		records, err := store.ListKillRecords(limit)
		if err != nil {
			return fmt.Errorf("listing kill records: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No kill attempts recorded")
			return nil
		}

		// Step 4: Print formatted table
		const separator = "────────────────────────────────────────────────────────────────────────"

		fmt.Println("\nKill Audit Log")
		fmt.Println(separator)
		fmt.Printf("  %-3s  %-12s  %-17s  %-8s  %-21s  %s\n", "#", "ID", "At", "PID", "Code", "Message")
		fmt.Println(separator)

		for i, record := range records {
			fmt.Printf("  %-3d  %-12s  %-17s  %-8d  %-21s  %s\n",
				i+1,
				shortRecordID(record.ID),
				record.At.Format("2006-01-02 15:04"),
				record.PID,
				record.Code,
				record.Message)
		}

		fmt.Println(separator)
		fmt.Printf("Total: %d attempt(s)\n\n", len(records))

		return nil
	},
}

// shortRecordID returns the first 8 characters of a UUID followed by "..."
// for compact table display.
func shortRecordID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}

func init() {
	killsCmd.Flags().Int("limit", 10, "Maximum number of attempts to display")
	rootCmd.AddCommand(killsCmd)
}
