package auth

import "time"

// Role drives both view reachability and asset visibility.
type Role string

const (
	// RoleAdmin has full access to every view and record.
	RoleAdmin Role = "admin"
	// RoleManager manages assets and users like an admin.
	RoleManager Role = "manager"
	// RoleUser sees only assets assigned to their employee id.
	RoleUser Role = "user"
	// RoleViewer has read-only access to the full asset collection.
	RoleViewer Role = "viewer"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser, RoleViewer:
		return true
	}
	return false
}

// Identity represents the authenticated principal used for authorization
// decisions. One identity exists per session; it is immutable except through
// Service.UpdateProfile.
type Identity struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Role       Role      `json:"role"`
	Department string    `json:"department"`
	EmployeeID string    `json:"employeeId"`
	Avatar     string    `json:"avatar,omitempty"`
	LastLogin  time.Time `json:"lastLogin"`
}

// Credentials carries a single login attempt.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// ProfileUpdate holds replacement fields for an identity. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	// ID is accepted for wire compatibility with form payloads but ignored:
	// identity ids are immutable.
	ID         *string
	Email      *string
	FirstName  *string
	LastName   *string
	Role       *Role
	Department *string
	EmployeeID *string
	Avatar     *string
}
