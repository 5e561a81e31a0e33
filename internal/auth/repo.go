package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/assetdesk/assetdesk/internal/shared"
)

// Entry pairs a stored credential with its identity record.
type Entry struct {
	Email        string
	PasswordHash string
	Identity     Identity
}

// Repository defines the directory operations the authenticator depends on.
type Repository interface {
	FindByLogin(ctx context.Context, email string) (Entry, error)
	FindByID(ctx context.Context, id string) (Entry, error)
	ReplaceIdentity(ctx context.Context, email string, identity Identity) error
}

// Directory is the seeded in-memory table standing in for a real identity
// provider. Login emails are unique; new entries are never created after
// construction, only the identity half of an existing entry is replaced.
type Directory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewDirectory builds a Directory from the given entries, keyed by
// lower-cased login email. A later duplicate email overwrites an earlier one.
func NewDirectory(entries []Entry) *Directory {
	table := make(map[string]Entry, len(entries))
	for _, e := range entries {
		table[normalizeEmail(e.Email)] = e
	}
	return &Directory{entries: table}
}

// FindByLogin fetches an entry by login email.
func (d *Directory) FindByLogin(ctx context.Context, email string) (Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	entry, ok := d.entries[normalizeEmail(email)]
	if !ok {
		return Entry{}, shared.ErrNotFound
	}
	return entry, nil
}

// FindByID fetches an entry by identity id.
func (d *Directory) FindByID(ctx context.Context, id string) (Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, entry := range d.entries {
		if entry.Identity.ID == id {
			return entry, nil
		}
	}
	return Entry{}, shared.ErrNotFound
}

// ReplaceIdentity overwrites the identity half of a stored pair, leaving the
// credential untouched. Returns shared.ErrNotFound for unknown emails.
func (d *Directory) ReplaceIdentity(ctx context.Context, email string, identity Identity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := normalizeEmail(email)
	entry, ok := d.entries[key]
	if !ok {
		return shared.ErrNotFound
	}
	entry.Identity = identity
	d.entries[key] = entry
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ Repository = (*Directory)(nil)
