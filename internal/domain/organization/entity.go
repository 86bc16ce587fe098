package organization

import "time"

type Organization struct {
	ID          string
	Name        string
	Description *string
	// InviteCode is the short join code shared with managers. Unique across
	// all organizations, enforced by the database.
	InviteCode string
	CreatedBy  string
	CreatedAt  time.Time
}
