package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]User, error)
	// SetMembership links a user to an organization with a role and marks
	// onboarding as complete.
	SetMembership(ctx context.Context, id string, organizationID string, role Role) error
	UpdateRole(ctx context.Context, id string, organizationID string, role Role) error
	CompleteOnboarding(ctx context.Context, id string) error
}
