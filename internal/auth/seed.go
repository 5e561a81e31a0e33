package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SeedAccount describes one demo directory account with its plaintext
// password. Hashing happens when the directory is built.
type SeedAccount struct {
	Password string
	Identity Identity
}

// DemoAccounts returns the fixed demo credential set mirroring the company
// employee list. Login emails are unique.
func DemoAccounts() []SeedAccount {
	now := time.Now().UTC()
	return []SeedAccount{
		{
			Password: "admin123",
			Identity: Identity{
				ID:         "3",
				Email:      "robert.brown@company.com",
				FirstName:  "Robert",
				LastName:   "Brown",
				Role:       RoleAdmin,
				Department: "Administration",
				EmployeeID: "EMP003",
				LastLogin:  now,
			},
		},
		{
			Password: "manager123",
			Identity: Identity{
				ID:         "2",
				Email:      "jane.smith@company.com",
				FirstName:  "Jane",
				LastName:   "Smith",
				Role:       RoleManager,
				Department: "Information Technology",
				EmployeeID: "EMP002",
				LastLogin:  now.Add(-24 * time.Hour),
			},
		},
		{
			Password: "manager123",
			Identity: Identity{
				ID:         "7",
				Email:      "mike.thompson@company.com",
				FirstName:  "Mike",
				LastName:   "Thompson",
				Role:       RoleManager,
				Department: "Information Technology",
				EmployeeID: "EMP007",
				LastLogin:  now.Add(-48 * time.Hour),
			},
		},
		{
			Password: "user123",
			Identity: Identity{
				ID:         "1",
				Email:      "john.doe@company.com",
				FirstName:  "John",
				LastName:   "Doe",
				Role:       RoleUser,
				Department: "Information Technology",
				EmployeeID: "EMP001",
				LastLogin:  now.Add(-12 * time.Hour),
			},
		},
		{
			Password: "user123",
			Identity: Identity{
				ID:         "6",
				Email:      "carol.davis@company.com",
				FirstName:  "Carol",
				LastName:   "Davis",
				Role:       RoleUser,
				Department: "Finance",
				EmployeeID: "EMP006",
				LastLogin:  now.Add(-2 * time.Hour),
			},
		},
		{
			Password: "user123",
			Identity: Identity{
				ID:         "5",
				Email:      "bob.wilson@company.com",
				FirstName:  "Bob",
				LastName:   "Wilson",
				Role:       RoleUser,
				Department: "Information Technology",
				EmployeeID: "EMP005",
				LastLogin:  now.Add(-14 * 24 * time.Hour),
			},
		},
		{
			Password: "viewer123",
			Identity: Identity{
				ID:         "4",
				Email:      "alice.johnson@company.com",
				FirstName:  "Alice",
				LastName:   "Johnson",
				Role:       RoleViewer,
				Department: "Human Resources",
				EmployeeID: "EMP004",
				LastLogin:  now.Add(-6 * time.Hour),
			},
		},
	}
}

// NewSeededDirectory builds a Directory from the demo accounts.
func NewSeededDirectory() (*Directory, error) {
	accounts := DemoAccounts()
	entries := make([]Entry, 0, len(accounts))
	for _, acct := range accounts {
		// MinCost keeps construction cheap; these are demo credentials.
		hash, err := bcrypt.GenerateFromPassword([]byte(acct.Password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("auth: hash seed password for %s: %w", acct.Identity.Email, err)
		}
		entries = append(entries, Entry{
			Email:        acct.Identity.Email,
			PasswordHash: string(hash),
			Identity:     acct.Identity,
		})
	}
	return NewDirectory(entries), nil
}
