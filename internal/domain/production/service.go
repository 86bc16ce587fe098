package production

import "context"

type ProductionService interface {
	Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	Update(ctx context.Context, req UpdateEntryRequest) error
	Delete(ctx context.Context, id string) error

	// ListByWorker lists a worker's entries in an inclusive date range with
	// display names joined, sorted by production date then ID.
	ListByWorker(ctx context.Context, workerID string, startDate, endDate string) ([]EntryDetailResponse, error)
}
