package commands

import (
	"errors"

	"vregress/internal/cli"
	"vregress/internal/config"
	"vregress/internal/discovery"
	"vregress/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	lister    *discovery.Lister
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	lister *discovery.Lister,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		lister:    lister,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := lc.lister.Load()
	if err != nil {
		if errors.Is(err, discovery.ErrNoTests) {
			color.Yellow("No tests found")
			return &cli.ExitError{Code: cli.ExitNoTests}
		}
		return err
	}

	tests = lc.filter.FilterByName(tests, lc.config.Flags.NameFilter)
	if len(tests) == 0 {
		color.Yellow("No tests match the filter")
		return nil
	}

	lc.formatter.PrintTestList(tests)
	return nil
}
