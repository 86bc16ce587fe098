package rate

import "context"

type RateService interface {
	// CreateStyleRate appends a new rate record for a style in the caller's
	// organization.
	CreateStyleRate(ctx context.Context, req CreateStyleRateRequest) (StyleRateResponse, error)

	// ListStyleRates returns every rate record for a style.
	ListStyleRates(ctx context.Context, styleID string) ([]StyleRateResponse, error)

	// ResolveRate returns the rate in force for the style on the given date,
	// or ErrNoApplicableRate.
	ResolveRate(ctx context.Context, styleID string, onDate string) (ResolvedRateResponse, error)
}
