// internal/profile/sqlite.go
//
// SQLite key-value backend for profiles.
//
// Characteristics:
//   - Rows in profile_kv keyed by (owner, key).
//   - Set is an upsert and stamps updated_at.
//   - Survives restarts; the terminal client and the server share the file.

package profile

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLite stores KV entries in the profile_kv table.
type SQLite struct{ db *sql.DB }

// NewSQLite wraps an open, migrated database.
func NewSQLite(db *sql.DB) *SQLite { return &SQLite{db: db} }

// For returns the KV of one owner.
func (s *SQLite) For(owner string) KV { return sqliteKV{db: s.db, owner: owner} }

type sqliteKV struct {
	db    *sql.DB
	owner string
}

func (kv sqliteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := kv.db.QueryRowContext(ctx,
		`SELECT value FROM profile_kv WHERE owner=? AND key=?`, kv.owner, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (kv sqliteKV) Set(ctx context.Context, key, value string) error {
	_, err := kv.db.ExecContext(ctx, `
        INSERT INTO profile_kv (owner, key, value, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(owner, key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		kv.owner, key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
