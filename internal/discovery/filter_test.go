package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		tests    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			tests:    []string{"uart_test", "spi_test", "axi_test"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			tests:    []string{"uart_test", "spi_test", "axi_test"},
			pattern:  "uart*",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			tests:    []string{"uart_basic", "uart_fifo", "spi_test"},
			pattern:  "*uart*",
			expected: 2,
		},
		{
			name:     "multiple wildcard fragments",
			tests:    []string{"uart_fifo_deep", "uart_basic", "spi_fifo"},
			pattern:  "*uart*fifo*",
			expected: 1,
		},
		{
			name:     "simple contains match",
			tests:    []string{"uart_test", "spi_test", "axi_test"},
			pattern:  "spi",
			expected: 1,
		},
		{
			name:     "no matches",
			tests:    []string{"uart_test", "spi_test"},
			pattern:  "*jtag*",
			expected: 0,
		},
		{
			name:     "matches base name of nested path",
			tests:    []string{"suite/uart_test", "suite/spi_test"},
			pattern:  "uart*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.tests, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d: %v", tt.expected, len(result), result)
			}
		})
	}
}
