package commands

import (
	"errors"
	"fmt"
	"time"

	"vregress/internal/cli"
	"vregress/internal/config"
	"vregress/internal/discovery"
	"vregress/internal/domain"
	"vregress/internal/history"
	"vregress/internal/regress"
	"vregress/internal/storage"
	"vregress/internal/ui"

	"github.com/spf13/cobra"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config    *config.Config
	lister    *discovery.Lister
	checker   *regress.Checker
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(
	cfg *config.Config,
	lister *discovery.Lister,
	checker *regress.Checker,
	st storage.Storage,
	formatter *ui.Formatter,
) *CheckCommand {
	return &CheckCommand{
		config:    cfg,
		lister:    lister,
		checker:   checker,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command. The process exit code is failed+missing, with
// distinct codes for setup failures.
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := cc.config.Preflight(); err != nil {
		return cli.Exitf(cli.ExitPreflight, "Error: %v. Exiting.", err)
	}

	tests, err := cc.lister.Load()
	if err != nil {
		if errors.Is(err, discovery.ErrNoTests) {
			return cli.Exitf(cli.ExitNoTests,
				"No tests list file was found under %q\nAll tests found are listed in file %q",
				cc.config.TestListFile, cc.config.FoundListFile)
		}
		return err
	}

	cc.checker.SetProgress(ui.NewProgressBar(len(tests), "Checking tests"))

	start := time.Now()
	summary, failures, err := cc.checker.Check(tests)
	if err != nil {
		return cli.Exitf(cli.ExitLogOpen, "Error: %v", err)
	}

	output := domain.NewCheckOutput(summary, failures, time.Since(start))

	if !cc.config.Flags.NoSave {
		if err := cc.storage.Save(output); err != nil {
			return fmt.Errorf("failed to save check snapshot: %w", err)
		}
	}

	if cc.config.Flags.Record {
		if err := cc.record(output); err != nil {
			return err
		}
	}

	cc.formatter.PrintSummary(output)

	if code := summary.ExitCode(); code != 0 {
		return &cli.ExitError{Code: code}
	}
	return nil
}

// record stores the run summary in the history database
func (cc *CheckCommand) record(output *domain.CheckOutput) error {
	store, err := history.Open(cc.config)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(output.Meta)
}
