// Package regress implements the regression result checker: it walks the
// listed test directories, reads each test's name-mapping file, and
// classifies every sub-test by scanning its result file for the pass
// marker.
package regress

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"vregress/internal/config"
	"vregress/internal/domain"
	"vregress/internal/ui"
)

// Checker aggregates pass/fail results for a list of tests.
//
// Counter policy (kept bug-compatible with the historical checker, CI
// keys off failed+missing): a missing output directory increments
// missing, but a missing mapping file or result file is only logged.
type Checker struct {
	cfg      *config.Config
	out      io.Writer
	progress *ui.ProgressBar
}

// NewChecker creates a new Checker writing console diagnostics to out
func NewChecker(cfg *config.Config, out io.Writer) *Checker {
	return &Checker{cfg: cfg, out: out}
}

// SetProgress sets the progress bar for the checker
func (c *Checker) SetProgress(progress *ui.ProgressBar) {
	c.progress = progress
}

// Check classifies every listed test in file order. Tests appearing twice
// are checked twice. All per-test and per-sub-test errors are absorbed
// into the log; only a log-open failure is returned.
func (c *Checker) Check(tests []string) (domain.CheckSummary, []domain.SubTestFailure, error) {
	log, err := OpenLog(c.cfg.GetCheckLogPath())
	if err != nil {
		return domain.CheckSummary{}, nil, err
	}
	defer log.Close()

	var summary domain.CheckSummary
	var failures []domain.SubTestFailure

	for _, t := range tests {
		summary.Tests++
		if c.cfg.Flags.Debug {
			fmt.Fprintf(c.out, "checking %s\n", t)
		}
		c.checkOne(t, log, &summary, &failures)
		if c.progress != nil {
			c.progress.Update(summary.Tests, summary.Passed, summary.Failed+summary.Missing)
		}
	}
	if c.progress != nil {
		c.progress.Finish()
	}

	if summary.Clean() {
		log.None()
	}
	return summary, failures, nil
}

// checkOne classifies the sub-tests of a single test directory
func (c *Checker) checkOne(t string, log *Log, summary *domain.CheckSummary, failures *[]domain.SubTestFailure) {
	outDir := c.cfg.TestOutputDirPath(t)
	if _, err := os.Stat(outDir); err != nil {
		summary.Missing++
		log.ErrorBlock("Expected output directory was not found", outDir)
		fmt.Fprintf(c.out, "Expected output: %s was not found\n", outDir)
		return
	}

	mpath := c.cfg.MappingFilePath(outDir)
	if _, err := os.Stat(mpath); err != nil {
		// No mapping means no sub-tests ran; compile-only failures are
		// already reported upstream, so no counter moves here
		fmt.Fprintf(c.out, "No name mapping file found in %s\n", mpath)
		return
	}

	mf, err := os.Open(mpath)
	if err != nil {
		log.ErrorBlock("could not read name mapping file", mpath)
		return
	}
	defer mf.Close()

	sc := bufio.NewScanner(mf)
	for sc.Scan() {
		c.checkSubTest(t, outDir, mpath, sc.Text(), log, summary, failures)
	}
	if err := sc.Err(); err != nil {
		log.ErrorBlock("could not read name mapping file", mpath)
	}
}

// checkSubTest classifies one mapping line
func (c *Checker) checkSubTest(t, outDir, mpath, line string, log *Log, summary *domain.CheckSummary, failures *[]domain.SubTestFailure) {
	rec, err := ParseMappingLine(line)
	if err != nil {
		log.ErrorBlock("malformed mapping line", mpath)
		return
	}

	rpath := c.cfg.ResultFilePath(outDir, rec.GeneratedName)
	data, err := os.ReadFile(rpath)
	if err != nil {
		// Distinct from a failed test: the file never appeared, so it
		// contributes to neither counter
		log.ErrorBlock("result file not found", rpath)
		return
	}

	text := string(data)
	if strings.Contains(text, c.cfg.PassMarker) {
		summary.Passed++
		return
	}

	summary.Failed++
	log.FailureBlock(rec.Raw)
	if c.cfg.Flags.Verbose {
		log.FailureOutput(text)
	}
	*failures = append(*failures, domain.SubTestFailure{
		TestDir:       t,
		GeneratedName: rec.GeneratedName,
		OriginalLabel: rec.OriginalLabel,
		MappingLine:   rec.Raw,
		Output:        text,
	})
}
