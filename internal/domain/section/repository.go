package section

import "context"

type SectionRepository interface {
	Create(ctx context.Context, newSection Section) (Section, error)
	GetByID(ctx context.Context, id string, organizationID string) (Section, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]SectionWithManager, error)
	ListByManager(ctx context.Context, managerID string, organizationID string) ([]Section, error)
	Update(ctx context.Context, id string, organizationID string, name string, managerID string) error
	Delete(ctx context.Context, id string, organizationID string) error
}
