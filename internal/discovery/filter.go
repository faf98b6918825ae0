package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test directories by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test directories by name pattern using wildcard
// matching against the directory base name. Supports patterns like
// "*_axi" or "*uart*"; a pattern without wildcards is a substring match.
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	var filtered []string
	for _, test := range tests {
		name := filepath.Base(test)

		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, test)
			continue
		}

		if strings.ContainsAny(pattern, "*?") {
			if wildcardContains(name, pattern) {
				filtered = append(filtered, test)
			}
			continue
		}

		if strings.Contains(name, pattern) {
			filtered = append(filtered, test)
		}
	}
	return filtered
}

// wildcardContains reports whether every non-wildcard fragment of pattern
// appears in name. This is looser than filepath.Match and covers patterns
// like "*uart*fifo*".
func wildcardContains(name, pattern string) bool {
	parts := strings.Split(pattern, "*")
	any := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		any = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return any
}
