package storage

import (
	"vregress/internal/config"
	"vregress/internal/domain"
)

// Storage persists and loads check snapshots (e.g. for the failures viewer).
type Storage interface {
	Save(output *domain.CheckOutput) error
	Load() (*domain.CheckOutput, error)
}

// JSONStorage stores snapshots in a JSON file under the configured path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's snapshot path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
