package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	// RolePending marks a freshly registered user who has not yet created or
	// joined an organization.
	RolePending Role = "pending"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RolePending
}

type User struct {
	ID                     string
	Name                   string
	Email                  string
	PasswordHash           *string
	GoogleID               *string
	OrganizationID         *string
	Role                   Role
	HasCompletedOnboarding bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
