package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vregress/internal/config"
)

func newListerConfig(t *testing.T) *config.Config {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "vregress-lister-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	cfg := config.New()
	cfg.ProjectPath = tmpDir
	return cfg
}

func newLister(cfg *config.Config) *Lister {
	return NewLister(cfg, NewScanner(cfg.MarkerScript, cfg.SkipDirs))
}

func TestLister_CuratedList(t *testing.T) {
	cfg := newListerConfig(t)
	content := strings.Join([]string{
		"# nightly set",
		"uart_test",
		"",
		"  spi_test  ",
		"#disabled_test",
		"uart_test",
	}, "\n") + "\n"
	if err := os.WriteFile(cfg.GetTestListPath(), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write list: %v", err)
	}

	tests, err := newLister(cfg).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Comment and blank lines dropped, order preserved, duplicates kept
	want := []string{"uart_test", "spi_test", "uart_test"}
	if len(tests) != len(want) {
		t.Fatalf("expected %d tests, got %d: %v", len(want), len(tests), tests)
	}
	for i, w := range want {
		if tests[i] != w {
			t.Errorf("entry %d: expected %q, got %q", i, w, tests[i])
		}
	}
}

func TestLister_DiscoverWritesFoundList(t *testing.T) {
	cfg := newListerConfig(t)
	for _, dir := range []string{"suite/uart_test", "suite/spi_test"} {
		p := filepath.Join(cfg.ProjectPath, dir)
		if err := os.MkdirAll(p, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", p, err)
		}
		if err := os.WriteFile(filepath.Join(p, cfg.MarkerScript), []byte("#!/usr/bin/env python3\n"), 0644); err != nil {
			t.Fatalf("failed to write marker: %v", err)
		}
	}

	tests, err := newLister(cfg).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tests) != 2 {
		t.Fatalf("expected 2 discovered tests, got %d: %v", len(tests), tests)
	}

	data, err := os.ReadFile(cfg.GetFoundListPath())
	if err != nil {
		t.Fatalf("found list not written: %v", err)
	}
	for _, test := range tests {
		if !strings.Contains(string(data), test) {
			t.Errorf("found list missing %q:\n%s", test, data)
		}
	}
}

func TestLister_EmptyScanFails(t *testing.T) {
	cfg := newListerConfig(t)

	_, err := newLister(cfg).Load()
	if !errors.Is(err, ErrNoTests) {
		t.Fatalf("expected ErrNoTests, got %v", err)
	}

	// The found list is still written so the caller can inspect it
	if _, err := os.Stat(cfg.GetFoundListPath()); err != nil {
		t.Errorf("found list not written: %v", err)
	}
}
