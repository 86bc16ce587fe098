package report

import (
	"context"
	"errors"
	"sort"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/production"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/rate"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/report"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/section"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	entryRepo     production.EntryRepository
	styleRateRepo rate.StyleRateRepository
	styleRepo     style.StyleRepository
	sectionRepo   section.SectionRepository
}

func NewReportService(
	entryRepo production.EntryRepository,
	styleRateRepo rate.StyleRateRepository,
	styleRepo style.StyleRepository,
	sectionRepo section.SectionRepository,
) report.ReportService {
	return &ReportServiceImpl{
		entryRepo:     entryRepo,
		styleRateRepo: styleRateRepo,
		styleRepo:     styleRepo,
		sectionRepo:   sectionRepo,
	}
}

func (s *ReportServiceImpl) SectionSummary(ctx context.Context, sectionID string, startDate, endDate string) (report.SectionSummaryResponse, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return report.SectionSummaryResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return report.SectionSummaryResponse{}, err
	}

	if _, err := s.sectionRepo.GetByID(ctx, sectionID, organizationID); err != nil {
		return report.SectionSummaryResponse{}, err
	}

	entries, err := s.entryRepo.ListBySectionAndRange(ctx, sectionID, organizationID, startDate, endDate)
	if err != nil {
		return report.SectionSummaryResponse{}, err
	}

	summaries, totalQuantity, totalPay, err := s.summarize(ctx, entries, organizationID)
	if err != nil {
		return report.SectionSummaryResponse{}, err
	}

	return report.SectionSummaryResponse{
		SectionID:      sectionID,
		StartDate:      startDate,
		EndDate:        endDate,
		TotalQuantity:  totalQuantity,
		TotalPay:       totalPay,
		StyleSummaries: summaries,
	}, nil
}

func (s *ReportServiceImpl) StyleSummaryForSection(ctx context.Context, sectionID string, styleID string, startDate, endDate string) (report.StyleSectionSummaryResponse, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return report.StyleSectionSummaryResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return report.StyleSectionSummaryResponse{}, err
	}

	if _, err := s.sectionRepo.GetByID(ctx, sectionID, organizationID); err != nil {
		return report.StyleSectionSummaryResponse{}, err
	}

	entries, err := s.entryRepo.ListBySectionStyleAndRange(ctx, sectionID, styleID, organizationID, startDate, endDate)
	if err != nil {
		return report.StyleSectionSummaryResponse{}, err
	}

	// Same fold as SectionSummary restricted to one style, so the totals
	// match the corresponding StyleSummaries row exactly.
	_, totalQuantity, totalPay, err := s.summarize(ctx, entries, organizationID)
	if err != nil {
		return report.StyleSectionSummaryResponse{}, err
	}

	return report.StyleSectionSummaryResponse{
		SectionID:     sectionID,
		StyleID:       styleID,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalQuantity: totalQuantity,
		TotalPay:      totalPay,
	}, nil
}

func (s *ReportServiceImpl) OrganizationDailyProduction(ctx context.Context, date string) (report.DailyProductionResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return report.DailyProductionResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return report.DailyProductionResponse{}, err
	}

	entries, err := s.entryRepo.ListByOrganizationAndDate(ctx, organizationID, date)
	if err != nil {
		return report.DailyProductionResponse{}, err
	}

	responses := make([]production.EntryDetailResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, production.ToDetailResponse(e))
	}

	return report.DailyProductionResponse{
		Date:    date,
		Entries: responses,
	}, nil
}

// summarize groups entries per style, pricing each entry at the rate in force
// on its own production date. An entry with no applicable rate still counts
// its quantity; it just earns nothing.
func (s *ReportServiceImpl) summarize(ctx context.Context, entries []production.Entry, organizationID string) ([]report.StyleSummary, int64, decimal.Decimal, error) {
	ratesByStyle := make(map[string][]rate.StyleRate)
	byStyle := make(map[string]*report.StyleSummary)

	var totalQuantity int64
	totalPay := decimal.Zero

	for _, e := range entries {
		styleRates, ok := ratesByStyle[e.StyleID]
		if !ok {
			var err error
			styleRates, err = s.styleRateRepo.ListByStyle(ctx, e.StyleID, organizationID)
			if err != nil {
				return nil, 0, decimal.Zero, err
			}
			ratesByStyle[e.StyleID] = styleRates
		}

		summary, ok := byStyle[e.StyleID]
		if !ok {
			summary = &report.StyleSummary{
				StyleID:   e.StyleID,
				StyleName: s.styleName(ctx, e.StyleID, organizationID),
				Pay:       decimal.Zero,
			}
			byStyle[e.StyleID] = summary
		}

		summary.Quantity += e.Quantity
		totalQuantity += e.Quantity

		resolved, err := rate.Resolve(styleRates, e.ProductionDate, rate.ResolveOptions{})
		if err != nil {
			if errors.Is(err, rate.ErrNoApplicableRate) {
				continue
			}
			return nil, 0, decimal.Zero, err
		}

		pay := resolved.Rate.Mul(decimal.NewFromInt(e.Quantity))
		summary.Pay = summary.Pay.Add(pay)
		totalPay = totalPay.Add(pay)
	}

	summaries := make([]report.StyleSummary, 0, len(byStyle))
	for _, summary := range byStyle {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].StyleName != summaries[j].StyleName {
			return summaries[i].StyleName < summaries[j].StyleName
		}
		return summaries[i].StyleID < summaries[j].StyleID
	})

	return summaries, totalQuantity, totalPay, nil
}

// styleName tolerates a style deleted after its entries were logged.
func (s *ReportServiceImpl) styleName(ctx context.Context, styleID string, organizationID string) string {
	st, err := s.styleRepo.GetByID(ctx, styleID, organizationID)
	if err != nil {
		return ""
	}
	return st.Name
}

func validateRange(startDate, endDate string) error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(startDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(endDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func organizationIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", organization.ErrNotMember
	}
	return organizationID, nil
}
