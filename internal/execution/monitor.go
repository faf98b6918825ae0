package execution

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"vregress/internal/config"
	"vregress/internal/domain"
	"vregress/internal/ui"
)

// Monitor polls dispatched farm jobs until every one of them settles
type Monitor struct {
	config   *config.Config
	out      io.Writer
	progress *ui.ProgressBar
}

// NewMonitor creates a new Monitor writing console diagnostics to out
func NewMonitor(cfg *config.Config, out io.Writer) *Monitor {
	return &Monitor{config: cfg, out: out}
}

// SetProgress sets the progress bar for the monitor
func (m *Monitor) SetProgress(progress *ui.ProgressBar) {
	m.progress = progress
}

// Wait polls the status tool for every running job on the configured
// interval until all jobs settle or ctx is cancelled. Returns the number
// of jobs that settled in a failed state.
func (m *Monitor) Wait(ctx context.Context, jobs []*domain.DispatchJob) (int, error) {
	statusPath, err := m.config.FarmToolPath(config.FarmStatusTool)
	if err != nil {
		return 0, err
	}

	ticker := time.NewTicker(m.config.PollInterval)
	defer ticker.Stop()

	for {
		done, failed := m.poll(ctx, statusPath, jobs)
		if m.progress != nil {
			m.progress.Update(done+failed, done, failed)
		}
		if done+failed == len(jobs) {
			if m.progress != nil {
				m.progress.Finish()
			}
			return failed, nil
		}

		select {
		case <-ctx.Done():
			return failed, ctx.Err()
		case <-ticker.C:
		}
	}
}

// poll refreshes every unsettled job and returns the settled counts
func (m *Monitor) poll(ctx context.Context, statusPath string, jobs []*domain.DispatchJob) (done, failed int) {
	for _, job := range jobs {
		if job.Status == domain.JobRunning {
			job.Status = m.queryStatus(ctx, statusPath, job)
		}
		switch job.Status {
		case domain.JobDone:
			done++
		case domain.JobFailed:
			failed++
		}
	}
	return done, failed
}

// queryStatus asks the farm for one job's state
func (m *Monitor) queryStatus(ctx context.Context, statusPath string, job *domain.DispatchJob) domain.JobStatus {
	cmd := exec.CommandContext(ctx, statusPath, job.ID)
	output, err := cmd.Output()
	if err != nil {
		// An unqueryable job is treated as settled-failed so the run
		// cannot hang on it forever
		if m.config.Flags.Debug {
			fmt.Fprintf(m.out, "status query for job %s (%s) failed: %v\n", job.ID, job.TestDir, err)
		}
		return domain.JobFailed
	}
	return parseStatus(string(output))
}

// parseStatus maps the status tool's output to a job state. The tool
// prints a state word; anything unrecognized is treated as still running.
func parseStatus(output string) domain.JobStatus {
	state := strings.ToUpper(strings.TrimSpace(output))
	switch {
	case strings.Contains(state, "DONE"), strings.Contains(state, "COMPLETE"):
		return domain.JobDone
	case strings.Contains(state, "EXIT"), strings.Contains(state, "FAIL"), strings.Contains(state, "KILL"):
		return domain.JobFailed
	default:
		return domain.JobRunning
	}
}
