package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/assetdesk/assetdesk/internal/shared"
)

func validForm() Form {
	return Form{
		AssetID:  "AST-100",
		Name:     "Test Laptop",
		Category: CategoryComputer,
		Status:   StatusActive,
	}
}

func TestAddSynthesizesIDAndStamps(t *testing.T) {
	svc := NewService(nil)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	asset, err := svc.Add(validForm())
	require.NoError(t, err)
	require.Equal(t, "1717243200000", asset.ID, "id is the generation-time token")
	require.Equal(t, now, asset.CreatedAt)
	require.Equal(t, now, asset.UpdatedAt)
	require.Len(t, svc.List(), 1)
}

func TestAddSameMillisecondStaysUnique(t *testing.T) {
	svc := NewService(nil)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	first, err := svc.Add(validForm())
	require.NoError(t, err)
	second, err := svc.Add(validForm())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestAddRejectsMissingRequiredFields(t *testing.T) {
	svc := NewService(nil)
	form := validForm()
	form.Name = ""
	_, err := svc.Add(form)
	require.Error(t, err)
	require.Empty(t, svc.List())
}

func TestEditRefreshesOnlyUpdatedAt(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService([]Asset{{
		ID: "42", AssetID: "AST-042", Name: "Old Name",
		Category: CategoryServer, Status: StatusActive,
		CreatedAt: created, UpdatedAt: created,
	}})
	edited := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return edited }

	form := validForm()
	form.Name = "New Name"
	asset, err := svc.Edit("42", form)
	require.NoError(t, err)
	require.Equal(t, "42", asset.ID)
	require.Equal(t, "New Name", asset.Name)
	require.Equal(t, created, asset.CreatedAt)
	require.Equal(t, edited, asset.UpdatedAt)
}

func TestEditUnknownID(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Edit("42", validForm())
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteRemovesByID(t *testing.T) {
	svc := NewService([]Asset{{ID: "41"}, {ID: "42"}, {ID: "43"}})

	require.True(t, svc.Delete("42"))
	for _, asset := range svc.List() {
		require.NotEqual(t, "42", asset.ID)
	}
	require.Len(t, svc.List(), 2)

	// Deleting a non-existent id is a no-op.
	require.False(t, svc.Delete("42"))
	require.Len(t, svc.List(), 2)
}

func TestListReturnsCopy(t *testing.T) {
	svc := NewService([]Asset{{ID: "1", Name: "original"}})
	list := svc.List()
	list[0].Name = "mutated"
	fresh, ok := svc.Get("1")
	require.True(t, ok)
	require.Equal(t, "original", fresh.Name)
}
