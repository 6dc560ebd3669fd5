package persistence

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"filialstore/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS filiais (
    pos    INTEGER PRIMARY KEY AUTOINCREMENT,
    id     INTEGER NOT NULL UNIQUE,
    nome   TEXT NOT NULL,
    bairro TEXT NOT NULL
);
`

// SQLiteStore implements Store using a SQLite database. The pos column keeps
// the storage order the JSON backend gets for free from its array.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadFiliais() ([]types.Filial, error) {
	rows, err := s.db.Query("SELECT id, nome, bairro FROM filiais ORDER BY pos")
	if err != nil {
		return nil, fmt.Errorf("failed to query filiais: %w", err)
	}
	defer rows.Close()

	filiais := []types.Filial{}
	for rows.Next() {
		var f types.Filial
		if err := rows.Scan(&f.ID, &f.Nome, &f.Bairro); err != nil {
			return nil, fmt.Errorf("failed to scan filial: %w", err)
		}
		filiais = append(filiais, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("filial rows error: %w", err)
	}

	return filiais, nil
}

func (s *SQLiteStore) DumpFiliais(filiais []types.Filial) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", ErrWriteFailed, err)
	}
	defer tx.Rollback()

	// Full replace, mirroring the JSON backend's whole-file rewrite.
	if _, err := tx.Exec("DELETE FROM filiais"); err != nil {
		return fmt.Errorf("%w: failed to clear filiais: %v", ErrWriteFailed, err)
	}
	if _, err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = 'filiais'"); err != nil {
		return fmt.Errorf("%w: failed to reset order: %v", ErrWriteFailed, err)
	}

	for _, f := range filiais {
		if _, err := tx.Exec(
			"INSERT INTO filiais (id, nome, bairro) VALUES (?, ?, ?)",
			f.ID, f.Nome, f.Bairro,
		); err != nil {
			return fmt.Errorf("%w: failed to insert filial %d: %v", ErrWriteFailed, f.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
