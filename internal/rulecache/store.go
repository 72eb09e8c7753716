package rulecache

import (
	"context"
	"database/sql"
	_ "embed"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store is a SQLite-backed memoization cache for induction runs, keyed
// by NewKey. Uses WAL mode for concurrent read access while a run is
// writing a new entry.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at path, applying the
// required pragmas and schema. Idempotent - safe to call repeatedly
// against the same path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, storeError("open", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, storeError("ping", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, storeError("apply schema", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return storeError("apply pragma "+p, err)
		}
	}
	return nil
}

// Put stores ruleml under key, overwriting any entry already present -
// a cache refresh always wins over a stale hit.
func (s *Store) Put(ctx context.Context, key, mode string, ruleml []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (cache_key, mode, ruleml, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET mode = excluded.mode, ruleml = excluded.ruleml, created_at = excluded.created_at
	`, key, mode, ruleml, time.Now().Unix())
	if err != nil {
		return storeError("put", err)
	}
	return nil
}

// Get returns the cached RuleML bytes for key, and false if no entry
// exists.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var ruleml []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT ruleml FROM cache_entries WHERE cache_key = ?
	`, key).Scan(&ruleml)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storeError("get", err)
	}
	return ruleml, true, nil
}

// Evict removes the cache entry for key, if present. Unconditionally
// safe to call on a missing key.
func (s *Store) Evict(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE cache_key = ?`, key); err != nil {
		return storeError("evict", err)
	}
	return nil
}
