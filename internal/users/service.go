package users

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/assetdesk/assetdesk/internal/shared"
)

// Service manages the in-memory user collection. Like the asset collection it
// has exactly one writer, the view dispatch loop.
type Service struct {
	validate *validator.Validate
	users    []User
	now      func() time.Time
}

// NewService builds a Service seeded with the given users.
func NewService(seed []User) *Service {
	users := make([]User, len(seed))
	copy(users, seed)
	return &Service{
		validate: validator.New(),
		users:    users,
		now:      time.Now,
	}
}

// List returns a copy of the collection in insertion order.
func (s *Service) List() []User {
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Get fetches a user by id.
func (s *Service) Get(id string) (User, bool) {
	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}
	return User{}, false
}

// Add validates the form and appends a new user with a generation-time id.
// New users start with a zero LastLogin.
func (s *Service) Add(form Form) (User, error) {
	if err := s.validate.Struct(form); err != nil {
		return User{}, fmt.Errorf("users: invalid form: %w", err)
	}
	now := s.now().UTC()
	user := form.apply(User{
		ID:        s.newID(now),
		CreatedAt: now,
		UpdatedAt: now,
	})
	s.users = append(s.users, user)
	return user, nil
}

// Edit replaces the submittable fields of the user identified by id and
// refreshes only its update timestamp.
func (s *Service) Edit(id string, form Form) (User, error) {
	if err := s.validate.Struct(form); err != nil {
		return User{}, fmt.Errorf("users: invalid form: %w", err)
	}
	for i, user := range s.users {
		if user.ID != id {
			continue
		}
		updated := form.apply(user)
		updated.UpdatedAt = s.now().UTC()
		s.users[i] = updated
		return updated, nil
	}
	return User{}, shared.ErrNotFound
}

// Delete removes the user identified by id. Unknown ids are a no-op.
func (s *Service) Delete(id string) bool {
	kept := s.users[:0]
	removed := false
	for _, user := range s.users {
		if user.ID == id {
			removed = true
			continue
		}
		kept = append(kept, user)
	}
	s.users = kept
	return removed
}

func (s *Service) newID(now time.Time) string {
	id := strconv.FormatInt(now.UnixMilli(), 10)
	for i := 1; s.hasID(id); i++ {
		id = strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.Itoa(i)
	}
	return id
}

func (s *Service) hasID(id string) bool {
	_, ok := s.Get(id)
	return ok
}
