package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := &models.Session{Username: "tuan.da", Role: models.RoleTeacher, Name: "Đặng Anh Tuấn", ID: "1"}
	require.NoError(t, store.Set(ctx, "k1", record))

	got, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tuan.da", got.Username)
	assert.Equal(t, models.RoleTeacher, got.Role)
	assert.True(t, got.Valid())
}

func TestMemoryStoreAbsentKey(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreMalformedBlob(t *testing.T) {
	store := NewMemoryStore()
	store.SetRaw("bad", []byte("{not json"))

	got, err := store.Get(context.Background(), "bad")
	require.NoError(t, err)
	assert.Nil(t, got, "a malformed stored record must read as logged out")
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", &models.Session{Username: "admin", Role: models.RoleAdmin}))
	require.NoError(t, store.Clear(ctx, "k1"))

	got, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, store.Clear(ctx, "k1"))
}

func TestSessionValid(t *testing.T) {
	assert.False(t, (&models.Session{}).Valid())
	assert.False(t, (*models.Session)(nil).Valid())
	assert.True(t, (&models.Session{Role: models.RoleStudent}).Valid())
}
