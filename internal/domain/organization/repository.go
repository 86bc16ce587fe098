package organization

import "context"

type OrganizationRepository interface {
	Create(ctx context.Context, newOrganization Organization) (Organization, error)
	GetByID(ctx context.Context, id string) (Organization, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (Organization, error)
	ExistsByInviteCode(ctx context.Context, inviteCode string) (bool, error)
}
