package main

import (
	"fmt"

	"github.com/hakim/portwatch/internal/portset"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named port profiles",
	Long: `Inspect the built-in framework profile and manage user-defined profiles.

Stored profiles are persisted in the database and can be scanned or watched
by name via --profile on the scan and watch commands.`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a profile's port expression and materialized ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		profile := portset.DefaultProfile()
		if name != "" && name != portset.DefaultProfileName {
			store, err := openStore()
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer store.Close()

			stored, err := store.GetProfile(name)
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}
			if stored == nil {
				return exitWith(exitValidation, "no profile named %q", name)
			}
			profile = *stored
		}

		ports, err := profile.Ports()
		if err != nil {
			return fmt.Errorf("materializing profile %q: %w", profile.Name, err)
		}

		fmt.Printf("name:  %s\n", profile.Name)
		fmt.Printf("ports: %s\n", profile.PortsExpr)
		fmt.Printf("count: %d\n", len(ports))
		return nil
	},
}

var profileSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a named port profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		portsExpr, _ := cmd.Flags().GetString("ports")

		if name == portset.DefaultProfileName {
			return exitWith(exitValidation, "%q is the built-in profile and cannot be replaced", name)
		}

		// Reject malformed expressions before they reach the database
		if _, err := portset.Parse(portsExpr); err != nil {
			return exitWith(exitValidation, "%w", err)
		}

		store, err := openStore()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		if err := store.SaveProfile(portset.Profile{Name: name, PortsExpr: portsExpr}); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}

		fmt.Printf("[+] Saved profile %q (%s)\n", name, portsExpr)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in and stored profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		records, err := store.ListProfiles()
		if err != nil {
			return fmt.Errorf("listing profiles: %w", err)
		}

		fmt.Printf("  %-20s  %s\n", "NAME", "PORTS")
		fmt.Printf("  %-20s  %s\n", portset.DefaultProfileName, portset.DefaultPortsExpr)
		for _, record := range records {
			fmt.Printf("  %-20s  %s\n", record.Name, record.PortsExpr)
		}
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		if name == portset.DefaultProfileName {
			return exitWith(exitValidation, "the built-in profile cannot be deleted")
		}

		store, err := openStore()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		if err := store.DeleteProfile(name); err != nil {
			return exitWith(exitValidation, "%w", err)
		}

		fmt.Printf("[+] Deleted profile %q\n", name)
		return nil
	},
}

func init() {
	profileShowCmd.Flags().String("name", "", "profile name (default: the built-in profile)")

	profileSaveCmd.Flags().String("name", "", "profile name (required)")
	profileSaveCmd.Flags().String("ports", "", `port expression, e.g. "9000-9009" (required)`)
	profileSaveCmd.MarkFlagRequired("name")
	profileSaveCmd.MarkFlagRequired("ports")

	profileDeleteCmd.Flags().String("name", "", "profile name (required)")
	profileDeleteCmd.MarkFlagRequired("name")

	profileCmd.AddCommand(profileShowCmd, profileSaveCmd, profileListCmd, profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}
