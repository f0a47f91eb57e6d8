// Package sqlite is the storage adapter. It implements the repository ports
// and the aggregate store on an embedded SQLite database, keeping the
// (part, warehouse) and work-order-number uniqueness rules plus the
// optimistic version checks at the schema boundary where they belong.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Config holds database settings.
type Config struct {
	// Path is the database file location. Parent directories are created
	// on open.
	Path string

	// BusyTimeoutMS is how long a writer waits on a locked database before
	// failing.
	BusyTimeoutMS int
}

// Open opens the database, applies pragmas, and runs pending migrations.
func Open(cfg Config) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	if cfg.BusyTimeoutMS <= 0 {
		cfg.BusyTimeoutMS = 5000
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)",
		cfg.Path, cfg.BusyTimeoutMS)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	// The driver serializes writers anyway; a single connection avoids
	// SQLITE_BUSY churn under concurrent commits.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}
	return db, nil
}
