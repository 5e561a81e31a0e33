package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/assetdesk/assetdesk/internal/shared"
)

func TestDirectoryLookups(t *testing.T) {
	dir, err := NewSeededDirectory()
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}
	ctx := context.Background()

	entry, err := dir.FindByLogin(ctx, "John.Doe@Company.com")
	if err != nil {
		t.Fatalf("find by login: %v", err)
	}
	if entry.Identity.EmployeeID != "EMP001" {
		t.Fatalf("expected EMP001, got %s", entry.Identity.EmployeeID)
	}

	entry, err = dir.FindByID(ctx, "4")
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if entry.Identity.Role != RoleViewer {
		t.Fatalf("expected viewer, got %s", entry.Identity.Role)
	}

	if _, err := dir.FindByLogin(ctx, "nobody@company.com"); !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := dir.FindByID(ctx, "999"); !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReplaceIdentityKeepsCredential(t *testing.T) {
	dir, err := NewSeededDirectory()
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}
	ctx := context.Background()

	before, err := dir.FindByLogin(ctx, "jane.smith@company.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	updated := before.Identity
	updated.Department = "Platform Engineering"
	if err := dir.ReplaceIdentity(ctx, before.Email, updated); err != nil {
		t.Fatalf("replace identity: %v", err)
	}

	after, err := dir.FindByLogin(ctx, "jane.smith@company.com")
	if err != nil {
		t.Fatalf("find after replace: %v", err)
	}
	if after.Identity.Department != "Platform Engineering" {
		t.Fatalf("identity not replaced: %s", after.Identity.Department)
	}
	if after.PasswordHash != before.PasswordHash {
		t.Fatalf("credential changed on identity replacement")
	}
}

func TestReplaceIdentityUnknownLogin(t *testing.T) {
	dir := NewDirectory(nil)
	err := dir.ReplaceIdentity(context.Background(), "ghost@company.com", Identity{})
	if !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDemoAccountEmailsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, acct := range DemoAccounts() {
		if seen[acct.Identity.Email] {
			t.Fatalf("duplicate demo email %s", acct.Identity.Email)
		}
		seen[acct.Identity.Email] = true
		if !acct.Identity.Role.Valid() {
			t.Fatalf("invalid role %q for %s", acct.Identity.Role, acct.Identity.Email)
		}
	}
}
