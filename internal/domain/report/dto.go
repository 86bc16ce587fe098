package report

import (
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/production"
	"github.com/shopspring/decimal"
)

// StyleSummary is one style's share of a section's output in a period.
type StyleSummary struct {
	StyleID   string          `json:"style_id"`
	StyleName string          `json:"style_name"`
	Quantity  int64           `json:"quantity"`
	Pay       decimal.Decimal `json:"pay"`
}

type SectionSummaryResponse struct {
	SectionID     string          `json:"section_id"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalPay      decimal.Decimal `json:"total_pay"`
	// StyleSummaries sums to the section totals exactly: TotalPay equals the
	// decimal sum of every Pay, TotalQuantity the sum of every Quantity.
	StyleSummaries []StyleSummary `json:"style_summaries"`
}

type StyleSectionSummaryResponse struct {
	SectionID     string          `json:"section_id"`
	StyleID       string          `json:"style_id"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalPay      decimal.Decimal `json:"total_pay"`
}

type DailyProductionResponse struct {
	Date    string                           `json:"date"`
	Entries []production.EntryDetailResponse `json:"entries"`
}
