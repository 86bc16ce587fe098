package report

import "context"

type ReportService interface {
	// SectionSummary totals a section's output and pay in the inclusive date
	// range, grouped per style. Entries with no applicable rate contribute
	// their quantity but no pay.
	SectionSummary(ctx context.Context, sectionID string, startDate, endDate string) (SectionSummaryResponse, error)

	// StyleSummaryForSection is SectionSummary narrowed to one style; its
	// totals match the corresponding StyleSummaries row exactly.
	StyleSummaryForSection(ctx context.Context, sectionID string, styleID string, startDate, endDate string) (StyleSectionSummaryResponse, error)

	// OrganizationDailyProduction lists one day's entries across the
	// organization with display names joined.
	OrganizationDailyProduction(ctx context.Context, date string) (DailyProductionResponse, error)
}
