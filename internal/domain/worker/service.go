package worker

import "context"

type WorkerService interface {
	// Create creates a worker. A manual ID, when given, must be unique
	// within the caller's organization.
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	Get(ctx context.Context, id string) (WorkerResponse, error)
	List(ctx context.Context) ([]WorkerResponse, error)
	ListBySection(ctx context.Context, sectionID string) ([]WorkerResponse, error)
	Update(ctx context.Context, req UpdateWorkerRequest) error
	Delete(ctx context.Context, id string) error
}
