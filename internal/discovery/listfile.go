package discovery

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"vregress/internal/config"
)

// Lister produces the ordered test list for a run: the curated list file
// when one exists, otherwise a fresh scan for marker scripts.
type Lister struct {
	cfg     *config.Config
	scanner *Scanner
}

// ErrNoTests is returned when no curated list exists and a scan finds nothing.
var ErrNoTests = fmt.Errorf("no tests found")

// NewLister creates a new Lister
func NewLister(cfg *config.Config, scanner *Scanner) *Lister {
	return &Lister{cfg: cfg, scanner: scanner}
}

// Load returns the test list in file order. Comment and blank lines are
// dropped; duplicates are kept (a test listed twice is checked twice).
// When the curated list is absent the tree is scanned, the discovered set
// is written to the found-list file, and ErrNoTests is returned if the
// scan came up empty.
func (l *Lister) Load() ([]string, error) {
	curated := l.cfg.GetTestListPath()
	if _, err := os.Stat(curated); err == nil {
		return l.readList(curated)
	}
	return l.discover()
}

// readList reads a list file verbatim, preserving order
func (l *Lister) readList(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open test list %s: %w", path, err)
	}
	defer fh.Close()

	var tests []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tests = append(tests, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read test list %s: %w", path, err)
	}
	return tests, nil
}

// discover scans for marker scripts and writes the found list
func (l *Lister) discover() ([]string, error) {
	tests, err := l.scanner.Scan(l.cfg.GetProjectPath())
	if err != nil {
		return nil, err
	}

	if err := l.writeFoundList(tests); err != nil {
		return nil, err
	}
	if len(tests) == 0 {
		return nil, ErrNoTests
	}
	return tests, nil
}

func (l *Lister) writeFoundList(tests []string) error {
	path := l.cfg.GetFoundListPath()
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write found list %s: %w", path, err)
	}
	defer fh.Close()

	w := bufio.NewWriter(fh)
	for _, t := range tests {
		fmt.Fprintln(w, t)
	}
	return w.Flush()
}
