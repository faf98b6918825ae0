package domain

import "testing"

func TestCheckSummary_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		summary  CheckSummary
		expected int
	}{
		{"clean", CheckSummary{Passed: 5}, 0},
		{"one failure", CheckSummary{Failed: 1}, 1},
		{"one missing", CheckSummary{Missing: 1}, 1},
		{"failures and missing add", CheckSummary{Failed: 2, Missing: 3}, 5},
		{"capped below setup codes", CheckSummary{Failed: 200, Missing: 100}, 122},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.summary.ExitCode(); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCheckSummary_Clean(t *testing.T) {
	if !(CheckSummary{Passed: 3}).Clean() {
		t.Error("all-passed summary should be clean")
	}
	if (CheckSummary{Failed: 1}).Clean() {
		t.Error("failed summary should not be clean")
	}
	if (CheckSummary{Missing: 1}).Clean() {
		t.Error("missing summary should not be clean")
	}
}
