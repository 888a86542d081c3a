package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

type sessionRepository interface {
	Find(ctx context.Context, key string) ([]byte, error)
	Upsert(ctx context.Context, key string, record []byte) error
	Delete(ctx context.Context, key string) error
}

// PostgresStore persists session blobs through a SQL repository.
type PostgresStore struct {
	repo sessionRepository
}

// NewPostgresStore constructs a Postgres-backed store.
func NewPostgresStore(repo sessionRepository) *PostgresStore {
	return &PostgresStore{repo: repo}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (*models.Session, error) {
	raw, err := s.repo.Find(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return decode(raw), nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, record *models.Session) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.repo.Upsert(ctx, key, raw)
}

func (s *PostgresStore) Clear(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}
