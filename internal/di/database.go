package di

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/goliatone/go-recipes/internal/runtimeconfig"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// OpenDatabase opens a bun.DB from the storage DSN. Postgres URLs use the pq
// driver with the postgres dialect; every other DSN is treated as a SQLite
// path or URI.
func OpenDatabase(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("di: storage dsn is required")
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("di: open postgres: %w", err)
		}
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	}

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("di: open sqlite: %w", err)
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if strings.Contains(dsn, ":memory:") {
		// A pooled connection to a fresh in-memory database would see an
		// empty schema; pin everything to one connection.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
