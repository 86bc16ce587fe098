package invitation

import (
	"time"

	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/user"
)

// Status represents the status of an invitation
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusExpired  Status = "expired"
)

type Invitation struct {
	ID             string
	OrganizationID string
	Email          string
	Role           user.Role
	InvitedBy      string
	Status         Status
	Token          string
	ExpiresAt      time.Time
	CreatedAt      time.Time
}

// IsExpired checks if the invitation has expired (query-time check)
func (i *Invitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// CanBeAccepted checks if the invitation can still be accepted
func (i *Invitation) CanBeAccepted() bool {
	return i.Status == StatusPending && !i.IsExpired()
}
