package main

import (
	"errors"
	"fmt"
	"os"

	"vregress/internal/cli"
	"vregress/internal/cli/commands"
	"vregress/internal/config"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "vregress",
		Short:   "VUnit regression runner and checker",
		Long:    `Run and check VUnit-based HDL regression suites. Tests are dispatched to an external farm scheduler; once the jobs finish, check classifies every sub-test by scanning its output for the simulator's pass marker.`,
		Version: version,
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command; ExitError carries the process exit code
	// (failed+missing for check, distinct codes for setup failures)
	if err := rootCmd.Execute(); err != nil {
		var xerr *cli.ExitError
		if errors.As(err, &xerr) {
			if xerr.Msg != "" {
				fmt.Fprintln(os.Stderr, xerr.Msg)
			}
			os.Exit(xerr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
