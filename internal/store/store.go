package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// Open opens the database without touching the schema. Use Rebuild before
// loading data into a fresh store.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Rebuild drops and recreates the four normalized tables, leaving them empty.
// On failure the store is in an undefined state and must not be queried.
func (s *Store) Rebuild() error {
	if err := createTables(s.db); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}
