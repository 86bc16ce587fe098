package rate

import "github.com/shopspring/decimal"

// StyleRate is one append-only price record for a style. A style accumulates
// rate records over time; the one in force on a given date is picked by
// Resolve, never by mutating earlier records.
type StyleRate struct {
	ID             string
	StyleID        string
	OrganizationID string
	Rate           decimal.Decimal
	// EffectiveDate is the first calendar date this rate applies, in
	// zero-padded "YYYY-MM-DD" form so string order equals date order.
	EffectiveDate string
	// EndDate is stored for bookkeeping but not consulted by resolution
	// unless EnforceEndDate is requested; see Resolve.
	EndDate *string
}
