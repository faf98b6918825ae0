package storage

import (
	"os"
	"testing"
	"time"

	"vregress/internal/config"
	"vregress/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vregress-storage-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := config.New()
	cfg.ProjectPath = tmpDir
	st := NewJSONStorage(cfg)

	summary := domain.CheckSummary{Tests: 3, Passed: 4, Failed: 1, Missing: 1}
	failures := []domain.SubTestFailure{
		{
			TestDir:       "uart_test",
			GeneratedName: "abc123",
			OriginalLabel: "tb_uart.basic",
			MappingLine:   "abc123 tb_uart.basic",
			Output:        "simulation aborted\n",
		},
	}
	if err := st.Save(domain.NewCheckOutput(summary, failures, 42*time.Second)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Meta.Passed != 4 || loaded.Meta.Failed != 1 || loaded.Meta.Missing != 1 {
		t.Errorf("unexpected meta: %+v", loaded.Meta)
	}
	if len(loaded.Details) != 1 || loaded.Details[0].OriginalLabel != "tb_uart.basic" {
		t.Errorf("unexpected details: %+v", loaded.Details)
	}

	// Resolved flags survive a viewer round trip
	loaded.Details[0].Resolved = true
	if err := st.Save(loaded); err != nil {
		t.Fatalf("re-save failed: %v", err)
	}
	again, err := st.Load()
	if err != nil {
		t.Fatalf("re-load failed: %v", err)
	}
	if !again.Details[0].Resolved {
		t.Error("resolved flag lost")
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	st := NewJSONStorage(cfg)

	if _, err := st.Load(); err == nil {
		t.Error("expected error when no snapshot exists")
	}
}
