package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"vregress/internal/config"
	"vregress/internal/domain"
)

// Formatter formats and displays console output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintSummary displays the result of a checker run
func (f *Formatter) PrintSummary(output *domain.CheckOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                  Regression Check Summary                     ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Tests Checked")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Sub-tests")
	color.Green("%-27d │\n", meta.Passed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Sub-tests")
	color.Red("%-27d │\n", meta.Failed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Missing Outputs")
	color.Red("%-27d │\n", meta.Missing)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.Failed == 0 && meta.Missing == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d sub-test failure(s), %d missing output(s)", meta.Failed, meta.Missing)
		fmt.Println()
		f.printFailureTree(output.Details)
	}
	fmt.Printf("Failures: %d\nMissing: %d\n", meta.Failed, meta.Missing)
}

// PrintTestList displays the enumerated tests
func (f *Formatter) PrintTestList(tests []string) {
	color.Cyan("Found %d test(s):\n", len(tests))
	for _, t := range tests {
		fmt.Printf("  %s\n", t)
	}
}

// PrintHistory displays recent regression runs
func (f *Formatter) PrintHistory(records []domain.RunRecord) {
	if len(records) == 0 {
		color.Yellow("No recorded runs")
		return
	}
	fmt.Printf("%-6s %-8s %-8s %-8s %-10s %s\n", "ID", "PASSED", "FAILED", "MISSING", "DURATION", "TIMESTAMP")
	for _, r := range records {
		line := fmt.Sprintf("%-6d %-8d %-8d %-8d %-10s %s",
			r.ID, r.Passed, r.Failed, r.Missing,
			fmt.Sprintf("%.1fs", r.DurationSeconds),
			r.Timestamp.Format("2006-01-02 15:04:05"))
		if r.Failed+r.Missing == 0 {
			color.Green("%s", line)
		} else {
			color.Red("%s", line)
		}
	}
}

// treeNode is a node in the failed-test tree
type treeNode struct {
	name     string
	children map[string]*treeNode
	failures []domain.SubTestFailure
}

// printFailureTree prints failed sub-tests grouped by test directory
func (f *Formatter) printFailureTree(failures []domain.SubTestFailure) {
	if len(failures) == 0 {
		return
	}

	root := &treeNode{children: make(map[string]*treeNode)}
	for _, failure := range failures {
		parts := strings.Split(strings.TrimPrefix(filepath.ToSlash(failure.TestDir), "./"), "/")
		current := root
		for _, part := range parts {
			if part == "" {
				continue
			}
			if current.children[part] == nil {
				current.children[part] = &treeNode{name: part, children: make(map[string]*treeNode)}
			}
			current = current.children[part]
		}
		current.failures = append(current.failures, failure)
	}

	f.printTreeNode(root, "")
}

func (f *Formatter) printTreeNode(node *treeNode, prefix string) {
	var keys []string
	for k := range node.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		child := node.children[k]
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(keys)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		if len(child.failures) > 0 {
			color.Red("%s%s%s", prefix, connector, child.name)
			for _, failure := range child.failures {
				label := failure.OriginalLabel
				if label == "" {
					label = failure.GeneratedName
				}
				color.Red("%s    ✗ %s", childPrefix, label)
			}
		} else {
			fmt.Printf("%s%s%s\n", prefix, connector, child.name)
		}
		f.printTreeNode(child, childPrefix)
	}
}
