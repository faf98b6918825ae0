package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetProjectPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   &Config{ProjectPath: "."},
			expected: ".",
		},
		{
			name: "with test path flag",
			config: &Config{
				ProjectPath: "/regress",
				Flags:       Flags{TestPath: "nightly"},
			},
			expected: "/regress/nightly",
		},
		{
			name: "absolute test path",
			config: &Config{
				ProjectPath: "/regress",
				Flags:       Flags{TestPath: "/absolute/path"},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetProjectPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_ResultPaths(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = "/regress"

	outDir := cfg.TestOutputDirPath("uart_test")
	if want := filepath.Join("/regress", "uart_test", "vunit_out"); outDir != want {
		t.Errorf("expected %s, got %s", want, outDir)
	}

	mpath := cfg.MappingFilePath(outDir)
	if want := filepath.Join(outDir, "test_output", "test_name_to_path_mapping.txt"); mpath != want {
		t.Errorf("expected %s, got %s", want, mpath)
	}

	rpath := cfg.ResultFilePath(outDir, "abc123")
	if want := filepath.Join(outDir, "test_output", "abc123", "output.txt"); rpath != want {
		t.Errorf("expected %s, got %s", want, rpath)
	}
}

func TestConfig_Preflight(t *testing.T) {
	t.Run("module path set", func(t *testing.T) {
		t.Setenv(EnvModulePath, "/usr/lib/vunit")
		t.Setenv(EnvRegressHome, "")
		cfg := New()
		cfg.ProjectPath = t.TempDir()
		if err := cfg.Preflight(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("regress home set", func(t *testing.T) {
		t.Setenv(EnvModulePath, "")
		t.Setenv(EnvRegressHome, "/opt/dsim_regress")
		cfg := New()
		cfg.ProjectPath = t.TempDir()
		if err := cfg.Preflight(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("nothing set is fatal", func(t *testing.T) {
		t.Setenv(EnvModulePath, "")
		t.Setenv(EnvRegressHome, "")
		cfg := New()
		cfg.ProjectPath = t.TempDir()
		if err := cfg.Preflight(); err == nil {
			t.Error("expected pre-flight error")
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.PassMarker != DefaultPassMarker {
		t.Errorf("expected pass marker %q, got %q", DefaultPassMarker, cfg.PassMarker)
	}
	if cfg.TestListFile != DefaultTestListFile {
		t.Errorf("expected test list %q, got %q", DefaultTestListFile, cfg.TestListFile)
	}
	if len(cfg.SkipDirs) != len(DefaultSkipDirs) {
		t.Errorf("expected %d skip dirs, got %d", len(DefaultSkipDirs), len(cfg.SkipDirs))
	}
}
