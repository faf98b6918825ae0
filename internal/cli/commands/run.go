package commands

import (
	"errors"
	"fmt"
	"os"

	"vregress/internal/cli"
	"vregress/internal/config"
	"vregress/internal/discovery"
	"vregress/internal/execution"
	"vregress/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config     *config.Config
	lister     *discovery.Lister
	dispatcher *execution.Dispatcher
	monitor    *execution.Monitor
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	lister *discovery.Lister,
	dispatcher *execution.Dispatcher,
	monitor *execution.Monitor,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		lister:     lister,
		dispatcher: dispatcher,
		monitor:    monitor,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := rc.config.Preflight(); err != nil {
		return cli.Exitf(cli.ExitPreflight, "Error: %v. Exiting.", err)
	}

	tests, err := rc.lister.Load()
	if err != nil {
		if errors.Is(err, discovery.ErrNoTests) {
			return cli.Exitf(cli.ExitNoTests,
				"No tests list file was found under %q\nAll tests found are listed in file %q",
				rc.config.TestListFile, rc.config.FoundListFile)
		}
		return err
	}

	logf, err := os.Create(rc.config.GetRunLogPath())
	if err != nil {
		return cli.Exitf(cli.ExitLogOpen, "Error: %v", err)
	}
	defer logf.Close()

	fmt.Fprintln(logf, "-------------------------------------------")
	fmt.Fprintln(logf, "Test run starting")
	fmt.Fprintln(logf, "-------------------------------------------")

	jobs, err := rc.dispatcher.Dispatch(cmd.Context(), tests, logf)
	if err != nil {
		return fmt.Errorf("dispatch failed: %w", err)
	}

	rc.monitor.SetProgress(ui.NewProgressBar(len(jobs), "Farm jobs"))
	failed, err := rc.monitor.Wait(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		fmt.Fprintf(logf, "job %s (%s): %s\n", job.ID, job.TestDir, job.Status)
	}

	if failed > 0 {
		color.Red("✗ %d of %d farm job(s) failed", failed, len(jobs))
		return &cli.ExitError{Code: 1}
	}
	color.Green("✓ All %d farm job(s) completed", len(jobs))
	return nil
}
