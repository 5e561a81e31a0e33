package users

import (
	"time"

	"github.com/assetdesk/assetdesk/internal/auth"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedUsers returns the demo HR user list. It mirrors the directory's demo
// identities by employee id but is maintained separately.
func SeedUsers() []User {
	created := date(2023, time.January, 15)
	return []User{
		{
			ID: "1", EmployeeID: "EMP001", FirstName: "John", LastName: "Doe",
			Email: "john.doe@company.com", Phone: "+1-555-0101",
			Department: "Information Technology", Position: "Software Engineer",
			Role: auth.RoleUser, Status: StatusActive, Location: "HQ Floor 2",
			Manager: "Jane Smith", StartDate: date(2021, time.May, 3),
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "2", EmployeeID: "EMP002", FirstName: "Jane", LastName: "Smith",
			Email: "jane.smith@company.com", Phone: "+1-555-0102",
			Department: "Information Technology", Position: "IT Manager",
			Role: auth.RoleManager, Status: StatusActive, Location: "HQ Floor 3",
			Manager: "Robert Brown", StartDate: date(2019, time.February, 11),
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "3", EmployeeID: "EMP003", FirstName: "Robert", LastName: "Brown",
			Email: "robert.brown@company.com", Phone: "+1-555-0103",
			Department: "Administration", Position: "CTO",
			Role: auth.RoleAdmin, Status: StatusActive, Location: "HQ Floor 4",
			StartDate: date(2017, time.September, 1),
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "4", EmployeeID: "EMP004", FirstName: "Alice", LastName: "Johnson",
			Email: "alice.johnson@company.com", Phone: "+1-555-0104",
			Department: "Human Resources", Position: "HR Analyst",
			Role: auth.RoleViewer, Status: StatusActive, Location: "HQ Floor 1",
			Manager: "Robert Brown", StartDate: date(2022, time.March, 21),
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "5", EmployeeID: "EMP005", FirstName: "Bob", LastName: "Wilson",
			Email: "bob.wilson@company.com", Phone: "+1-555-0105",
			Department: "Information Technology", Position: "Systems Administrator",
			Role: auth.RoleUser, Status: StatusSuspended, Location: "HQ Floor 2",
			Manager: "Jane Smith", StartDate: date(2020, time.July, 13),
			Notes:     "Access review in progress",
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "6", EmployeeID: "EMP006", FirstName: "Carol", LastName: "Davis",
			Email: "carol.davis@company.com", Phone: "+1-555-0106",
			Department: "Finance", Position: "Financial Analyst",
			Role: auth.RoleUser, Status: StatusActive, Location: "HQ Floor 1",
			Manager: "Robert Brown", StartDate: date(2021, time.November, 8),
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: "7", EmployeeID: "EMP007", FirstName: "Mike", LastName: "Thompson",
			Email: "mike.thompson@company.com", Phone: "+1-555-0107",
			Department: "Information Technology", Position: "Infrastructure Manager",
			Role: auth.RoleManager, Status: StatusInactive, Location: "Remote",
			Manager: "Robert Brown", StartDate: date(2018, time.June, 25),
			Notes:     "On sabbatical until next quarter",
			CreatedAt: created, UpdatedAt: created,
		},
	}
}
