package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/assetdesk/assetdesk/internal/auth"
	"github.com/assetdesk/assetdesk/internal/session"
)

func testIdentity() auth.Identity {
	return auth.Identity{
		ID:         "1",
		Email:      "john.doe@company.com",
		FirstName:  "John",
		LastName:   "Doe",
		Role:       auth.RoleUser,
		Department: "Information Technology",
		EmployeeID: "EMP001",
		LastLogin:  time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func newRedisStore(t *testing.T) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return session.NewRedisStore(client, "auth-user", time.Hour, nil), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()
	identity := testIdentity()

	require.NoError(t, store.Save(ctx, identity))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, identity, *loaded)
}

func TestRedisStoreAbsent(t *testing.T) {
	store, _ := newRedisStore(t)
	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestRedisStoreCorruptReadsAsAbsent(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set("session:auth-user", "{not json"))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, loaded)
	require.False(t, mr.Exists("session:auth-user"), "corrupt record should be discarded")
}

func TestRedisStoreClear(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx), "clearing an empty store is a no-op")

	require.NoError(t, store.Save(ctx, testIdentity()))
	require.NoError(t, store.Clear(ctx))
	require.False(t, mr.Exists("session:auth-user"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store := session.NewFileStore(path, nil)
	ctx := context.Background()
	identity := testIdentity()

	require.NoError(t, store.Save(ctx, identity))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, identity, *loaded)
}

func TestFileStoreAbsent(t *testing.T) {
	store := session.NewFileStore(filepath.Join(t.TempDir(), "missing.json"), nil)
	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestFileStoreCorruptReadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	store := session.NewFileStore(path, nil)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, loaded)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "corrupt file should be removed")
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewFileStore(path, nil)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx), "clearing an empty store is a no-op")

	require.NoError(t, store.Save(ctx, testIdentity()))
	require.NoError(t, store.Clear(ctx))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, loaded)
}
