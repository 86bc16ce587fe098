package section

import "context"

type SectionService interface {
	// Create creates a section. The manager must belong to the caller's
	// organization.
	Create(ctx context.Context, req CreateSectionRequest) (SectionResponse, error)
	Get(ctx context.Context, id string) (SectionResponse, error)
	List(ctx context.Context) ([]SectionResponse, error)
	Update(ctx context.Context, req UpdateSectionRequest) error
	Delete(ctx context.Context, id string) error
}
