package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/assetdesk/assetdesk/internal/shared"
)

// SessionPort is the minimal session-store surface logout needs.
type SessionPort interface {
	Clear(ctx context.Context) error
}

// Delays configures the simulated provider latency per operation. Zero values
// disable the delay.
type Delays struct {
	Login   time.Duration
	Logout  time.Duration
	Profile time.Duration
}

// Service implements the mock authentication flows against the directory.
//
// Login and UpdateProfile return the refreshed identity but do not persist it
// into the session store; that composition is the caller's responsibility.
// Logout clears the session store itself and never fails the caller.
type Service struct {
	repo     Repository
	sessions SessionPort
	logger   *slog.Logger
	delays   Delays
}

// NewService constructs a new Service.
func NewService(repo Repository, sessions SessionPort, logger *slog.Logger, delays Delays) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, sessions: sessions, logger: logger, delays: delays}
}

// Login validates the credentials, refreshes the stored identity's LastLogin
// and returns the refreshed record. Unknown emails and password mismatches
// both surface as shared.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, creds Credentials) (Identity, error) {
	s.simulate(s.delays.Login)

	entry, err := s.repo.FindByLogin(ctx, creds.Email)
	if err != nil {
		return Identity{}, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(creds.Password)); err != nil {
		return Identity{}, shared.ErrInvalidCredentials
	}

	identity := entry.Identity
	identity.LastLogin = time.Now().UTC()
	if err := s.repo.ReplaceIdentity(ctx, entry.Email, identity); err != nil {
		return Identity{}, fmt.Errorf("auth: persist login timestamp: %w", err)
	}
	return identity, nil
}

// Logout clears the persisted session. It is idempotent and never fails the
// caller-visible flow; internal errors are logged only.
func (s *Service) Logout(ctx context.Context) error {
	s.simulate(s.delays.Logout)

	if s.sessions != nil {
		if err := s.sessions.Clear(ctx); err != nil {
			s.logger.Warn("clear session on logout", slog.Any("error", err))
		}
	}
	return nil
}

// UpdateProfile merges the partial update over the identity resolved by id and
// persists the merged record. The identity id never changes regardless of the
// update content.
func (s *Service) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (Identity, error) {
	s.simulate(s.delays.Profile)

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Identity{}, shared.ErrNotFound
	}

	identity := mergeIdentity(entry.Identity, update)
	identity.ID = entry.Identity.ID
	if err := s.repo.ReplaceIdentity(ctx, entry.Email, identity); err != nil {
		return Identity{}, fmt.Errorf("auth: persist profile update: %w", err)
	}
	return identity, nil
}

// simulate models provider round-trip latency. Started waits are not
// cancellable, matching the mocked network behaviour.
func (s *Service) simulate(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

func mergeIdentity(identity Identity, update ProfileUpdate) Identity {
	if update.Email != nil {
		identity.Email = *update.Email
	}
	if update.FirstName != nil {
		identity.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		identity.LastName = *update.LastName
	}
	if update.Role != nil {
		identity.Role = *update.Role
	}
	if update.Department != nil {
		identity.Department = *update.Department
	}
	if update.EmployeeID != nil {
		identity.EmployeeID = *update.EmployeeID
	}
	if update.Avatar != nil {
		identity.Avatar = *update.Avatar
	}
	return identity
}
