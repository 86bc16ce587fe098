package rate

import "context"

type StyleRateRepository interface {
	// Create inserts a new rate record. Rates are append-only: there is no
	// Update and no Delete.
	Create(ctx context.Context, newRate StyleRate) (StyleRate, error)
	// ListByStyle returns every rate record for the style, any date.
	ListByStyle(ctx context.Context, styleID string, organizationID string) ([]StyleRate, error)
}
