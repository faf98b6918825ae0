package commands

import (
	"vregress/internal/config"
	"vregress/internal/history"
	"vregress/internal/ui"

	"github.com/spf13/cobra"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	store, err := history.Open(hc.config)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(hc.config.Flags.Limit)
	if err != nil {
		return err
	}

	hc.formatter.PrintHistory(records)
	return nil
}
