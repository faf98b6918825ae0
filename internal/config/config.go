package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// List files
	TestListFile  string
	FoundListFile string

	// Checker file names
	CheckLogFile  string
	OutputDirName string
	TestOutputDir string
	MappingFile   string
	ResultFile    string
	PassMarker    string

	// Dispatch settings
	RunLogFile      string
	MarkerScript    string
	PollInterval    time.Duration
	DispatchTimeout time.Duration

	// Snapshot settings
	SnapshotDir  string
	SnapshotFile string

	// Directories never scanned for tests
	SkipDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Verbose    bool
	Color      bool
	Debug      bool
	Record     bool
	NoSave     bool
	NameFilter string
	TestPath   string
	Limit      int
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:     ".",
		TestListFile:    DefaultTestListFile,
		FoundListFile:   DefaultFoundListFile,
		CheckLogFile:    DefaultCheckLogFile,
		OutputDirName:   DefaultOutputDirName,
		TestOutputDir:   DefaultTestOutputDir,
		MappingFile:     DefaultMappingFile,
		ResultFile:      DefaultResultFile,
		PassMarker:      DefaultPassMarker,
		RunLogFile:      DefaultRunLogFile,
		MarkerScript:    DefaultMarkerScript,
		PollInterval:    DefaultPollInterval,
		DispatchTimeout: DefaultDispatchTimeout,
		SnapshotDir:     DefaultSnapshotDir,
		SnapshotFile:    DefaultSnapshotFile,
	}
	cfg.SkipDirs = make([]string, len(DefaultSkipDirs))
	copy(cfg.SkipDirs, DefaultSkipDirs)
	return cfg
}

// GetProjectPath returns the project root, using the test-path flag if provided
func (c *Config) GetProjectPath() string {
	if c.Flags.TestPath != "" {
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}
	return c.ProjectPath
}

// GetTestListPath returns the path to the curated test list
func (c *Config) GetTestListPath() string {
	return filepath.Join(c.GetProjectPath(), c.TestListFile)
}

// GetFoundListPath returns the path to the discovered test list
func (c *Config) GetFoundListPath() string {
	return filepath.Join(c.GetProjectPath(), c.FoundListFile)
}

// GetCheckLogPath returns the path to the checker log
func (c *Config) GetCheckLogPath() string {
	return filepath.Join(c.GetProjectPath(), c.CheckLogFile)
}

// GetRunLogPath returns the path to the dispatch log
func (c *Config) GetRunLogPath() string {
	return filepath.Join(c.GetProjectPath(), c.RunLogFile)
}

// GetSnapshotPath returns the full path to the check snapshot JSON file.
// Resolves to an absolute path so check and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetSnapshotPath() string {
	p := filepath.Join(c.ProjectPath, c.SnapshotDir, c.SnapshotFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// TestOutputDirPath returns the output tree of one test (<test>/vunit_out)
func (c *Config) TestOutputDirPath(testDir string) string {
	return filepath.Join(c.GetProjectPath(), testDir, c.OutputDirName)
}

// MappingFilePath returns the name-mapping file under a test's output tree
func (c *Config) MappingFilePath(outDir string) string {
	return filepath.Join(outDir, c.TestOutputDir, c.MappingFile)
}

// ResultFilePath returns one sub-test's result file under a test's output tree
func (c *Config) ResultFilePath(outDir, generatedName string) string {
	return filepath.Join(outDir, c.TestOutputDir, generatedName, c.ResultFile)
}

// LoadEnv loads a .env file from the project directory if one exists.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	// .env is optional; plain environment variables work too
	_ = godotenv.Load(envPath)
}

// Preflight verifies the regression environment before any test is touched.
// Dispatched run.py jobs import the support library from either PYTHONPATH
// or $DSIM_REGRESS/lib/python, so one of the two must be set.
func (c *Config) Preflight() error {
	c.LoadEnv()
	if os.Getenv(EnvModulePath) != "" {
		return nil
	}
	if os.Getenv(EnvRegressHome) == "" {
		return fmt.Errorf("%s not set", EnvRegressHome)
	}
	return nil
}

// FarmToolPath resolves a farm tool, preferring PATH and falling back to
// $DSIM_REGRESS/bin.
func (c *Config) FarmToolPath(name string) (string, error) {
	if p, err := exec.LookPath(name); err == nil {
		return p, nil
	}
	home := os.Getenv(EnvRegressHome)
	if home == "" {
		return "", fmt.Errorf("%s not found on PATH and %s not set", name, EnvRegressHome)
	}
	p := filepath.Join(home, "bin", name)
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("%s not found at %s", name, p)
	}
	return p, nil
}
