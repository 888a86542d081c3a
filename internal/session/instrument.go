package session

import (
	"context"
	"time"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

// LookupObserver receives the outcome of each session store lookup.
type LookupObserver interface {
	RecordSessionLookup(hit bool, duration time.Duration)
}

// InstrumentedStore wraps a Store and reports lookup outcomes.
type InstrumentedStore struct {
	inner    Store
	observer LookupObserver
}

// Instrument wraps store so every Get is observed. A nil observer returns
// the store unchanged.
func Instrument(store Store, observer LookupObserver) Store {
	if observer == nil {
		return store
	}
	return &InstrumentedStore{inner: store, observer: observer}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) (*models.Session, error) {
	start := time.Now()
	record, err := s.inner.Get(ctx, key)
	s.observer.RecordSessionLookup(err == nil && record != nil, time.Since(start))
	return record, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, record *models.Session) error {
	return s.inner.Set(ctx, key, record)
}

func (s *InstrumentedStore) Clear(ctx context.Context, key string) error {
	return s.inner.Clear(ctx, key)
}
