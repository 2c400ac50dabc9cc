package main

import (
	"fmt"
	"os"

	"github.com/hakim/portwatch/internal/config"
	"github.com/hakim/portwatch/internal/portset"
	"github.com/hakim/portwatch/internal/storage"
	"github.com/spf13/cobra"
)

// Command-surface exit codes.
const (
	exitOSError    = 1
	exitValidation = 2
	exitBlocked    = 3
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "portwatch",
	Short: "Local dev-port monitor and safe process killer",
	Long: `Portwatch watches a configurable set of local TCP ports, reports which are
occupied and by which process, and terminates leftover dev servers behind a
safety policy that verifies process identity at the moment of the kill.

It ships with a built-in profile covering the conventional framework ranges
(Next.js, Vite, Angular, and 8080-8089) and supports user-defined profiles
persisted across runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		skipConfig := map[string]bool{
			"check":   true,
			"init":    true,
			"help":    true,
			"version": true,
		}

		if skipConfig[cmd.Name()] {
			return nil
		}

		// An explicitly chosen config file must exist and be valid; the
		// implicit default falls back to built-in defaults when no file
		// is present.
		if cmd.Flags().Changed("config") {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return exitWith(exitValidation, "failed to load config: %w", err)
			}
			return nil
		}

		if _, err := os.Stat(cfgFile); err == nil {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return exitWith(exitValidation, "failed to load config: %w", err)
			}
			return nil
		}

		cfg = config.DefaultConfig()
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portwatch.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")

	// Version flag
	rootCmd.Version = "0.1.0-dev"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// exitError carries a command-surface exit code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// exitWith wraps a formatted error with an exit code for main to unwrap.
func exitWith(code int, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}

// openStore opens the configured bbolt database.
func openStore() (*storage.Store, error) {
	return storage.NewStore(cfg.DBPath)
}

// resolvePortsExpr picks the port expression for scan/watch: an explicit
// --ports value wins, then a named profile, then the built-in default when
// --use-default is set.
func resolvePortsExpr(portsExpr, profileName string, useDefault bool) (string, error) {
	switch {
	case portsExpr != "":
		return portsExpr, nil

	case profileName != "":
		if profileName == portset.DefaultProfileName {
			return portset.DefaultPortsExpr, nil
		}
		store, err := openStore()
		if err != nil {
			return "", fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		profile, err := store.GetProfile(profileName)
		if err != nil {
			return "", fmt.Errorf("loading profile: %w", err)
		}
		if profile == nil {
			return "", exitWith(exitValidation, "no profile named %q", profileName)
		}
		return profile.PortsExpr, nil

	case useDefault:
		return portset.DefaultPortsExpr, nil

	default:
		return "", exitWith(exitValidation, "ports are required unless --use-default or --profile is given")
	}
}
