package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, newWorker Worker) (Worker, error)
	GetByID(ctx context.Context, id string, organizationID string) (Worker, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]WorkerWithSection, error)
	ListBySection(ctx context.Context, sectionID string, organizationID string) ([]Worker, error)
	// ExistsByManualID is the fast-path duplicate check. The partial unique
	// index on (organization_id, manual_id) is the real enforcement; two
	// concurrent creates can both pass this check and one will then fail on
	// the index.
	ExistsByManualID(ctx context.Context, organizationID string, manualID string) (bool, error)
	Update(ctx context.Context, id string, organizationID string, name string, sectionID string) error
	Delete(ctx context.Context, id string, organizationID string) error
}
