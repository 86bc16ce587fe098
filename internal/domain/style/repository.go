package style

import "context"

type StyleRepository interface {
	Create(ctx context.Context, newStyle Style) (Style, error)
	GetByID(ctx context.Context, id string, organizationID string) (Style, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]Style, error)
	Update(ctx context.Context, id string, organizationID string, name string, description *string) error
	Delete(ctx context.Context, id string, organizationID string) error
}
