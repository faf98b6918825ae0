package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner finds test directories by locating their marker script
type Scanner struct {
	markerScript string
	skipDirs     map[string]bool
}

// NewScanner creates a new Scanner for the given marker script name,
// skipping the given directory names
func NewScanner(markerScript string, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{markerScript: markerScript, skipDirs: skipMap}
}

// Scan walks the tree under root and returns the directory of every marker
// script found, relative to root, in walk order.
func (s *Scanner) Scan(root string) ([]string, error) {
	var testDirs []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			// Never descend into output or snapshot trees
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() == s.markerScript {
			dir, rerr := filepath.Rel(root, filepath.Dir(path))
			if rerr != nil {
				return rerr
			}
			// Markers directly in root would yield "."; keep those out,
			// a regression root is not itself a test
			if dir != "." {
				testDirs = append(testDirs, dir)
			}
		}

		return nil
	})

	return testDirs, err
}
