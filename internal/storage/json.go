package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vregress/internal/domain"
)

// Save writes a check snapshot to the configured JSON file.
func (s *JSONStorage) Save(output *domain.CheckOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	path := s.cfg.GetSnapshotPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads the last check snapshot from the configured JSON file.
func (s *JSONStorage) Load() (*domain.CheckOutput, error) {
	path := s.cfg.GetSnapshotPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	var output domain.CheckOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &output, nil
}
