package commands

import (
	"os"

	"vregress/internal/cli"
	"vregress/internal/config"
	"vregress/internal/discovery"
	"vregress/internal/execution"
	"vregress/internal/regress"
	"vregress/internal/storage"
	"vregress/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Check    *CheckCommand
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.MarkerScript, cfg.SkipDirs)
	lister := discovery.NewLister(cfg, scanner)
	filter := discovery.NewFilter()
	checker := regress.NewChecker(cfg, os.Stdout)
	dispatcher := execution.NewDispatcher(cfg, os.Stdout)
	monitor := execution.NewMonitor(cfg, os.Stdout)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Check:    NewCheckCommand(cfg, lister, checker, jsonStorage, formatter),
		Run:      NewRunCommand(cfg, lister, dispatcher, monitor),
		List:     NewListCommand(cfg, lister, filter, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
		History:  NewHistoryCommand(cfg, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "V", false, "Copy failing sub-test output into the check log / report each dispatch")
	rootCmd.PersistentFlags().BoolVarP(&flags.Color, "color", "C", false, "Enable color output")
	rootCmd.PersistentFlags().BoolVarP(&flags.Debug, "debug", "d", false, "Print extra diagnostics")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cfg.Flags = flags.ToConfigFlags()
		color.NoColor = !cfg.Flags.Color
	}

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check regression results",
		Long:  "Classify every listed test as passed, failed, or missing by scanning its sub-test output for the pass marker",
		RunE:  c.Check.Execute,
	}
	checkCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Regression root (defaults to the current directory)")
	checkCmd.Flags().BoolVar(&flags.Record, "record", false, "Record the run summary in the history database")
	checkCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Skip writing the JSON snapshot")
	rootCmd.AddCommand(checkCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Dispatch tests to the farm",
		Long:  "Remove stale output trees, submit each test's run script to the farm scheduler, and poll the jobs to completion",
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Regression root (defaults to the current directory)")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List enumerated tests",
		Long:  "Print the test set a run or check would process, without touching anything",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by directory name pattern (supports wildcards, e.g. '*uart*')")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Regression root (defaults to the current directory)")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View sub-test failures interactively",
		Long:  "Display failures from the last check in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded regression runs",
		Long:  "List recent run summaries from the history database",
		RunE:  c.History.Execute,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 10, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
