package production

import "context"

type EntryRepository interface {
	Create(ctx context.Context, newEntry Entry) (Entry, error)
	GetByID(ctx context.Context, id string, organizationID string) (Entry, error)
	Update(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, id string, organizationID string) error

	// Range fetches. Bounds are inclusive; an inverted range matches nothing
	// and returns an empty slice, not an error. Result order is unspecified;
	// callers sort when they need a stable presentation.
	ListByWorkerAndRange(ctx context.Context, workerID string, organizationID string, startDate, endDate string) ([]Entry, error)
	// ListBySectionAndRange counts an entry toward a section when the entry's
	// worker currently belongs to it (membership at query time, not at
	// production time).
	ListBySectionAndRange(ctx context.Context, sectionID string, organizationID string, startDate, endDate string) ([]Entry, error)
	ListBySectionStyleAndRange(ctx context.Context, sectionID string, styleID string, organizationID string, startDate, endDate string) ([]Entry, error)

	// ListByOrganizationAndDate returns one day's entries with worker, style
	// and section names joined for display.
	ListByOrganizationAndDate(ctx context.Context, organizationID string, date string) ([]EntryWithDetails, error)
	// ListByWorkerAndRangeWithDetails is the enriched variant of
	// ListByWorkerAndRange used by the production log listing.
	ListByWorkerAndRangeWithDetails(ctx context.Context, workerID string, organizationID string, startDate, endDate string) ([]EntryWithDetails, error)
}
