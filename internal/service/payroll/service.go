package payroll

import (
	"context"
	"errors"
	"sort"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/payroll"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/production"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/rate"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/worker"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	entryRepo     production.EntryRepository
	styleRateRepo rate.StyleRateRepository
	styleRepo     style.StyleRepository
	workerRepo    worker.WorkerRepository
}

func NewPayrollService(
	entryRepo production.EntryRepository,
	styleRateRepo rate.StyleRateRepository,
	styleRepo style.StyleRepository,
	workerRepo worker.WorkerRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		entryRepo:     entryRepo,
		styleRateRepo: styleRateRepo,
		styleRepo:     styleRepo,
		workerRepo:    workerRepo,
	}
}

func (s *PayrollServiceImpl) CalculateWorkerPayroll(ctx context.Context, workerID string, startDate, endDate string) (payroll.WorkerPayrollResponse, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return payroll.WorkerPayrollResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return payroll.WorkerPayrollResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, workerID, organizationID); err != nil {
		return payroll.WorkerPayrollResponse{}, err
	}

	entries, err := s.entryRepo.ListByWorkerAndRange(ctx, workerID, organizationID, startDate, endDate)
	if err != nil {
		return payroll.WorkerPayrollResponse{}, err
	}

	// Rate records and style names are fetched once per distinct style, not
	// once per entry.
	ratesByStyle := make(map[string][]rate.StyleRate)
	namesByStyle := make(map[string]*string)

	total := decimal.Zero
	details := make([]payroll.PayrollDetail, 0, len(entries))

	for _, e := range entries {
		styleRates, ok := ratesByStyle[e.StyleID]
		if !ok {
			styleRates, err = s.styleRateRepo.ListByStyle(ctx, e.StyleID, organizationID)
			if err != nil {
				return payroll.WorkerPayrollResponse{}, err
			}
			ratesByStyle[e.StyleID] = styleRates
			namesByStyle[e.StyleID] = s.styleName(ctx, e.StyleID, organizationID)
		}

		resolved, err := rate.Resolve(styleRates, e.ProductionDate, rate.ResolveOptions{})
		if err != nil {
			if errors.Is(err, rate.ErrNoApplicableRate) {
				// No rate in force on the production date: the entry is
				// left out of the payroll entirely.
				continue
			}
			return payroll.WorkerPayrollResponse{}, err
		}

		pay := resolved.Rate.Mul(decimal.NewFromInt(e.Quantity))
		total = total.Add(pay)
		details = append(details, payroll.PayrollDetail{
			EntryID:        e.ID,
			StyleID:        e.StyleID,
			StyleName:      namesByStyle[e.StyleID],
			ProductionDate: e.ProductionDate,
			Quantity:       e.Quantity,
			Rate:           resolved.Rate,
			Pay:            pay,
		})
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].ProductionDate != details[j].ProductionDate {
			return details[i].ProductionDate < details[j].ProductionDate
		}
		return details[i].EntryID < details[j].EntryID
	})

	return payroll.WorkerPayrollResponse{
		WorkerID:  workerID,
		StartDate: startDate,
		EndDate:   endDate,
		TotalPay:  total,
		Details:   details,
	}, nil
}

// styleName looks up the display name, tolerating a style deleted after its
// entries were logged.
func (s *PayrollServiceImpl) styleName(ctx context.Context, styleID string, organizationID string) *string {
	st, err := s.styleRepo.GetByID(ctx, styleID, organizationID)
	if err != nil {
		return nil
	}
	return &st.Name
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
