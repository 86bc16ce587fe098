package invitation

import "context"

type InvitationRepository interface {
	Create(ctx context.Context, newInvitation Invitation) (Invitation, error)
	GetByToken(ctx context.Context, token string) (Invitation, error)
	// GetPendingByEmail returns the pending invitation for an email within an
	// organization, or ErrInvitationNotFound.
	GetPendingByEmail(ctx context.Context, organizationID string, email string) (Invitation, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Invitation, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
