package execution

import (
	"testing"

	"vregress/internal/domain"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected domain.JobStatus
	}{
		{"done", "DONE\n", domain.JobDone},
		{"complete with detail", "COMPLETE on node fx-07\n", domain.JobDone},
		{"lowercase done", "done\n", domain.JobDone},
		{"exit is a failure", "EXIT 1\n", domain.JobFailed},
		{"killed", "KILLED by operator\n", domain.JobFailed},
		{"failed", "FAILED\n", domain.JobFailed},
		{"running", "RUNNING\n", domain.JobRunning},
		{"pending", "PEND\n", domain.JobRunning},
		{"empty output still running", "", domain.JobRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseStatus(tt.output); got != tt.expected {
				t.Errorf("parseStatus(%q) = %v, expected %v", tt.output, got, tt.expected)
			}
		})
	}
}
