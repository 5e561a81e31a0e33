package users

import (
	"time"

	"github.com/assetdesk/assetdesk/internal/auth"
)

// Status describes the employment state of a managed user.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// User is an HR record managed through the user-management feature.
//
// It overlaps with auth.Identity but is a separate collection seeded and
// mutated independently; the two are distinct bounded contexts with no
// automatic reconciliation.
type User struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Role       auth.Role `json:"role"`
	Status     Status    `json:"status"`
	Location   string    `json:"location"`
	Manager    string    `json:"manager"`
	StartDate  time.Time `json:"startDate"`
	LastLogin  time.Time `json:"lastLogin"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Form carries the submittable fields of a user record.
type Form struct {
	EmployeeID string `validate:"required"`
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	Email      string `validate:"required,email"`
	Phone      string
	Department string
	Position   string
	Role       auth.Role `validate:"required"`
	Status     Status    `validate:"required"`
	Location   string
	Manager    string
	StartDate  time.Time
	Notes      string
}

func (f Form) apply(user User) User {
	user.EmployeeID = f.EmployeeID
	user.FirstName = f.FirstName
	user.LastName = f.LastName
	user.Email = f.Email
	user.Phone = f.Phone
	user.Department = f.Department
	user.Position = f.Position
	user.Role = f.Role
	user.Status = f.Status
	user.Location = f.Location
	user.Manager = f.Manager
	user.StartDate = f.StartDate
	user.Notes = f.Notes
	return user
}
