package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// pragmas apply to every catalog database. The busy timeout covers the
// server and costctl touching the same file.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// Open opens the catalog database at dbPath, creating its parent directory
// when missing, and checks the connection before returning it.
func Open(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	catalogDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := catalogDB.ExecContext(ctx, pragma); err != nil {
			catalogDB.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if err := catalogDB.PingContext(ctx); err != nil {
		catalogDB.Close()
		return nil, fmt.Errorf("ping catalog database: %w", err)
	}

	return catalogDB, nil
}
