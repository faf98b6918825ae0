package config

import "time"

const (
	// DefaultTestListFile is the curated test list consumed by run and check
	DefaultTestListFile = "tests_to_run.txt"
	// DefaultFoundListFile receives the discovered test set when no curated list exists
	DefaultFoundListFile = "test_found_list.txt"
	// DefaultCheckLogFile is the checker's structured log
	DefaultCheckLogFile = "vunit_check.log"
	// DefaultRunLogFile is the dispatch log
	DefaultRunLogFile = "tests_run.log"
	// DefaultMarkerScript marks a directory as a test
	DefaultMarkerScript = "run.py"
	// DefaultOutputDirName is the per-test output tree produced by a run
	DefaultOutputDirName = "vunit_out"
	// DefaultTestOutputDir is the sub-tree holding per-sub-test output
	DefaultTestOutputDir = "test_output"
	// DefaultMappingFile maps generated sub-test directory names to original names
	DefaultMappingFile = "test_name_to_path_mapping.txt"
	// DefaultResultFile is the per-sub-test simulator transcript
	DefaultResultFile = "output.txt"
	// DefaultPassMarker is the sole evidence of a passing simulation
	DefaultPassMarker = "=N:[VhdlStop]"
	// DefaultSnapshotDir is the directory holding the last check snapshot
	DefaultSnapshotDir = "storage"
	// DefaultSnapshotFile is the JSON snapshot of the last check
	DefaultSnapshotFile = "check-results.json"
	// DefaultPollInterval is how often farm jobs are polled
	DefaultPollInterval = 5 * time.Second
	// DefaultDispatchTimeout bounds a single farm submission
	DefaultDispatchTimeout = 2 * time.Minute
)

const (
	// EnvRegressHome points at the regression-support installation
	EnvRegressHome = "DSIM_REGRESS"
	// EnvModulePath is the module search path used by dispatched run.py jobs
	EnvModulePath = "PYTHONPATH"
	// EnvSimOptions carries extra simulator options into dispatched jobs
	EnvSimOptions = "DSIM_CMD_OPTIONS"
	// FarmSubmitTool submits a job to the farm scheduler
	FarmSubmitTool = "mux-farm"
	// FarmStatusTool reports the state of a farm job
	FarmStatusTool = "mux-status"
)

// TimescaleOption is appended to the simulator options of every dispatched job.
const TimescaleOption = "-timescale 1ns/1ps"

// DefaultSkipDirs are directory names never descended into when scanning for tests.
var DefaultSkipDirs = []string{
	DefaultOutputDirName,
	DefaultSnapshotDir,
}
