// Package session persists the authenticated identity between runs of a
// single client. The store holds at most one record under a fixed key; a
// missing or undecodable record reads back as absence, never as an error.
package session

import (
	"context"

	"github.com/assetdesk/assetdesk/internal/auth"
)

// Store persists a single authenticated identity record.
type Store interface {
	// Save serializes the identity under the store's fixed key.
	Save(ctx context.Context, identity auth.Identity) error
	// Load returns the persisted identity, or nil when none is stored or the
	// stored data is corrupt. Corrupt data is logged and discarded.
	Load(ctx context.Context) (*auth.Identity, error)
	// Clear removes the persisted entry. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
