// Package execution submits tests to the external farm scheduler and polls
// them to completion. Parallelism lives in the farm; this side is strictly
// sequential.
package execution

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"vregress/internal/config"
	"vregress/internal/domain"
)

// Dispatcher submits one farm job per test directory
type Dispatcher struct {
	config *config.Config
	out    io.Writer
}

// NewDispatcher creates a new Dispatcher writing console diagnostics to out
func NewDispatcher(cfg *config.Config, out io.Writer) *Dispatcher {
	return &Dispatcher{config: cfg, out: out}
}

// Dispatch removes each test's stale output tree and submits its marker
// script to the farm, recording the returned job IDs. The submission runs
// with Dir set to the test directory; the process working directory is
// never changed. Log lines go to logw (the tests_run.log file).
func (d *Dispatcher) Dispatch(ctx context.Context, tests []string, logw io.Writer) ([]*domain.DispatchJob, error) {
	submitPath, err := d.config.FarmToolPath(config.FarmSubmitTool)
	if err != nil {
		return nil, err
	}

	env := d.jobEnv()

	var jobs []*domain.DispatchJob
	for i, t := range tests {
		testDir := filepath.Join(d.config.GetProjectPath(), t)

		outDir := filepath.Join(testDir, d.config.OutputDirName)
		if _, err := os.Stat(outDir); err == nil {
			fmt.Fprintf(d.out, "Removing previous: %s\n", outDir)
			if err := os.RemoveAll(outDir); err != nil {
				return jobs, fmt.Errorf("remove %s: %w", outDir, err)
			}
		}

		job := &domain.DispatchJob{TestDir: t, Index: i}
		fmt.Fprintf(logw, "Sending: %s\n", t)

		dctx, cancel := context.WithTimeout(ctx, d.config.DispatchTimeout)
		cmd := exec.CommandContext(dctx, submitPath, "bash", "-c", fmt.Sprintf("python3 ./%s", d.config.MarkerScript))
		cmd.Dir = testDir
		cmd.Env = env
		output, err := cmd.Output()
		cancel()
		if err != nil {
			return jobs, fmt.Errorf("submit %s: %w", t, err)
		}

		fmt.Fprintf(logw, "%s", output)
		job.ID = strings.TrimSpace(string(output))
		job.Status = domain.JobRunning
		jobs = append(jobs, job)

		if d.config.Flags.Verbose {
			fmt.Fprintf(d.out, "Dispatched %s as job %s\n", t, job.ID)
		}
	}

	return jobs, nil
}

// jobEnv builds the child environment, appending the timescale option to
// the simulator options
func (d *Dispatcher) jobEnv() []string {
	prefix := config.EnvSimOptions + "="
	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, prefix) {
			env = append(env, kv)
		}
	}
	opts := os.Getenv(config.EnvSimOptions)
	if opts != "" {
		opts += " "
	}
	return append(env, prefix+opts+config.TimescaleOption)
}
