package domain

import "time"

// CheckSummary holds the counters of one checker run
type CheckSummary struct {
	Tests   int // listed tests processed (comment lines excluded)
	Passed  int // sub-tests whose result file contained the pass marker
	Failed  int // sub-tests whose result file lacked the pass marker
	Missing int // tests whose output directory was absent
}

// ExitCode returns the process exit status for this summary. Result counts
// are capped below the setup-failure codes so the two ranges never collide.
func (s CheckSummary) ExitCode() int {
	n := s.Failed + s.Missing
	if n > 122 {
		n = 122
	}
	return n
}

// Clean reports whether the run had no failures and no missing outputs
func (s CheckSummary) Clean() bool {
	return s.Failed+s.Missing == 0
}

// SubTestFailure records one failed sub-test for the snapshot and the viewer
type SubTestFailure struct {
	TestDir       string `json:"test_dir"`
	GeneratedName string `json:"generated_name"`
	OriginalLabel string `json:"original_label"`
	MappingLine   string `json:"mapping_line"`
	Output        string `json:"output,omitempty"`
	Resolved      bool   `json:"resolved"`
}

// CheckMeta contains metadata about a checker run
type CheckMeta struct {
	TotalTests      int     `json:"total_tests"`
	Passed          int     `json:"passed_subtests"`
	Failed          int     `json:"failed_subtests"`
	Missing         int     `json:"missing_outputs"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// CheckOutput is the complete snapshot structure for a checker run
type CheckOutput struct {
	Meta    CheckMeta        `json:"meta"`
	Details []SubTestFailure `json:"details"`
}

// NewCheckOutput builds a snapshot from a summary and its failure records
func NewCheckOutput(summary CheckSummary, failures []SubTestFailure, duration time.Duration) *CheckOutput {
	return &CheckOutput{
		Meta: CheckMeta{
			TotalTests:      summary.Tests,
			Passed:          summary.Passed,
			Failed:          summary.Failed,
			Missing:         summary.Missing,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}
}

// RunRecord is one row of the regression run history
type RunRecord struct {
	ID              int64
	Passed          int
	Failed          int
	Missing         int
	DurationSeconds float64
	Timestamp       time.Time
}
