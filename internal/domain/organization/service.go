package organization

import (
	"context"

	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/user"
)

type OrganizationService interface {
	// Create creates an organization with a fresh invite code and promotes
	// the calling user to admin.
	Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error)

	// Join adds the calling user to the organization matching the invite
	// code. A pending email invitation for the user decides the role;
	// otherwise the user joins as manager.
	Join(ctx context.Context, req JoinOrganizationRequest) (JoinOrganizationResponse, error)

	// GetMine returns the calling user's organization.
	GetMine(ctx context.Context) (OrganizationResponse, error)

	// ListMembers lists the users in the calling user's organization.
	ListMembers(ctx context.Context) ([]user.UserResponse, error)

	// UpdateMemberRole changes a member's role. Admin only.
	UpdateMemberRole(ctx context.Context, req UpdateMemberRoleRequest) error

	// CompleteOnboarding marks the calling user's onboarding as done.
	CompleteOnboarding(ctx context.Context) error
}
