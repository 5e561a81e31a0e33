package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/assetdesk/assetdesk/internal/shared"
)

type stubSessions struct {
	cleared int
	err     error
}

func (s *stubSessions) Clear(ctx context.Context) error {
	s.cleared++
	return s.err
}

func newTestService(t *testing.T, sessions SessionPort) (*Service, *Directory) {
	t.Helper()
	dir, err := NewSeededDirectory()
	require.NoError(t, err)
	return NewService(dir, sessions, nil, Delays{}), dir
}

func TestLoginRefreshesLastLogin(t *testing.T) {
	svc, dir := newTestService(t, nil)
	ctx := context.Background()

	before, err := dir.FindByLogin(ctx, "john.doe@company.com")
	require.NoError(t, err)

	identity, err := svc.Login(ctx, Credentials{Email: "john.doe@company.com", Password: "user123"})
	require.NoError(t, err)
	require.Equal(t, RoleUser, identity.Role)
	require.True(t, identity.LastLogin.After(before.Identity.LastLogin), "LastLogin must be refreshed")

	stored, err := dir.FindByLogin(ctx, "john.doe@company.com")
	require.NoError(t, err)
	require.Equal(t, identity, stored.Identity, "refreshed identity must be persisted")
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Login(ctx, Credentials{Email: "nobody@company.com", Password: "user123"})
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)

	_, err = svc.Login(ctx, Credentials{Email: "john.doe@company.com", Password: "wrong"})
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLogoutClearsSessionAndNeverFails(t *testing.T) {
	sessions := &stubSessions{err: errors.New("redis down")}
	svc, _ := newTestService(t, sessions)

	require.NoError(t, svc.Logout(context.Background()))
	require.Equal(t, 1, sessions.cleared)

	// Idempotent: a second logout clears again without error.
	require.NoError(t, svc.Logout(context.Background()))
	require.Equal(t, 2, sessions.cleared)
}

func TestLogoutWithoutSessionStore(t *testing.T) {
	svc, _ := newTestService(t, nil)
	require.NoError(t, svc.Logout(context.Background()))
}

func TestUpdateProfileMergesAndKeepsID(t *testing.T) {
	svc, dir := newTestService(t, nil)
	ctx := context.Background()

	otherID := "999"
	firstName := "Jonathan"
	department := "Platform Engineering"
	identity, err := svc.UpdateProfile(ctx, "1", ProfileUpdate{
		ID:         &otherID,
		FirstName:  &firstName,
		Department: &department,
	})
	require.NoError(t, err)
	require.Equal(t, "1", identity.ID, "identity id must never change")
	require.Equal(t, "Jonathan", identity.FirstName)
	require.Equal(t, "Platform Engineering", identity.Department)
	require.Equal(t, "Doe", identity.LastName, "unset fields stay untouched")

	stored, err := dir.FindByID(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, identity, stored.Identity)
}

func TestUpdateProfileUnknownID(t *testing.T) {
	svc, _ := newTestService(t, nil)
	_, err := svc.UpdateProfile(context.Background(), "999", ProfileUpdate{})
	require.ErrorIs(t, err, shared.ErrNotFound)
}
