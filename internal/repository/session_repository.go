package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SessionRepository handles persistence of session records, the one entity
// that survives a restart when the postgres backend is selected.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Find returns the raw stored record for a session key.
func (r *SessionRepository) Find(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT record FROM sessions WHERE key = $1`
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, key); err != nil {
		return nil, err
	}
	return raw, nil
}

// Upsert stores or replaces the record for a session key.
func (r *SessionRepository) Upsert(ctx context.Context, key string, record []byte) error {
	const query = `INSERT INTO sessions (key, record, updated_at) VALUES ($1, $2, $3)
        ON CONFLICT (key) DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, record, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// Delete removes the record for a session key.
func (r *SessionRepository) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM sessions WHERE key = $1`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
