package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const createAssessmentsTable = `
CREATE TABLE IF NOT EXISTS assessments (
		"id" TEXT PRIMARY KEY,
		"score" REAL NOT NULL,
		"risk_category" TEXT NOT NULL,
		"table_version" TEXT NOT NULL,
		"input" TEXT NOT NULL,
		"created_at" TEXT NOT NULL
);`

const createCreatedAtIndex = `CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);`

// Store is the SQLite-backed assessment ledger.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and makes sure the schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to open database: %w", err)
	}
	// SQLite는 단일 writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open(): failed to connect to database: %w", err)
	}
	for _, stmt := range []string{createAssessmentsTable, createCreatedAtIndex} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage.Open(): failed to create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
