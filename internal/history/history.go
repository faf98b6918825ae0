// Package history records regression run summaries in a MySQL table so a
// lab can track pass rates across nightly runs.
package history

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"vregress/internal/config"
	"vregress/internal/domain"
)

// Store is a MySQL-backed run history
type Store struct {
	db *sql.DB
}

// Open connects to the history database using DB_* environment variables
// (loaded from .env when present) and creates the runs table on first use.
func Open(cfg *config.Config) (*Store, error) {
	cfg.LoadEnv()

	dbHost := envOr("DB_HOST", "127.0.0.1")
	dbPort := envOr("DB_PORT", "3306")
	dbUser := envOr("DB_USERNAME", "root")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := envOr("DB_DATABASE", "vregress")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPassword, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureTable(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (s *Store) ensureTable() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS regression_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		passed INT NOT NULL,
		failed INT NOT NULL,
		missing INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}

// Record inserts one run summary
func (s *Store) Record(meta domain.CheckMeta) error {
	_, err := s.db.Exec(
		`INSERT INTO regression_runs (passed, failed, missing, duration_seconds) VALUES (?, ?, ?, ?)`,
		meta.Passed, meta.Failed, meta.Missing, meta.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the latest n runs, newest first
func (s *Store) Recent(n int) ([]domain.RunRecord, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.db.Query(
		`SELECT id, passed, failed, missing, duration_seconds, created_at
		 FROM regression_runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var r domain.RunRecord
		if err := rows.Scan(&r.ID, &r.Passed, &r.Failed, &r.Missing, &r.DurationSeconds, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
