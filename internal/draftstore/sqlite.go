// Package draftstore persists one in-progress blog payload per admin so a
// half-written post survives a closed tab. The browser held this in local
// storage; the gateway keeps it in a single-file sqlite database instead.
package draftstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"opsdash/internal/common"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS blog_drafts (
		email      TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the admin's draft payload (an opaque JSON document).
func (s *Store) Save(ctx context.Context, email, payload string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blog_drafts (email, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		email, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to save draft", err)
	}
	return nil
}

type Draft struct {
	Payload   string    `json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Store) Get(ctx context.Context, email string) (*Draft, error) {
	row := s.db.QueryRowContext(ctx, `SELECT payload, updated_at FROM blog_drafts WHERE email = ?`, email)
	var draft Draft
	var updatedAt string
	if err := row.Scan(&draft.Payload, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "no draft saved", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load draft", err)
	}
	if parsed, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		draft.UpdatedAt = parsed
	}
	return &draft, nil
}

func (s *Store) Delete(ctx context.Context, email string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blog_drafts WHERE email = ?`, email)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete draft", err)
	}
	return nil
}
