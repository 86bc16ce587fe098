package invitation

import "context"

type InvitationService interface {
	// Create issues an invitation for an email within the caller's
	// organization. Admin only.
	Create(ctx context.Context, req CreateInvitationRequest) (InvitationResponse, error)

	// List lists invitations for the caller's organization.
	List(ctx context.Context) ([]InvitationResponse, error)

	// GetByToken resolves an invitation token (public endpoint). Expired
	// pending invitations are reported as expired.
	GetByToken(ctx context.Context, token string) (InvitationResponse, error)
}
