package rate

import (
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateStyleRateRequest struct {
	StyleID       string          `json:"-"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effective_date"`
	EndDate       *string         `json:"end_date,omitempty"`
}

func (r *CreateStyleRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		} else if *r.EndDate < r.EffectiveDate {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before effective_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StyleRateResponse struct {
	ID             string          `json:"id"`
	StyleID        string          `json:"style_id"`
	OrganizationID string          `json:"organization_id"`
	Rate           decimal.Decimal `json:"rate"`
	EffectiveDate  string          `json:"effective_date"`
	EndDate        *string         `json:"end_date,omitempty"`
}

func ToResponse(r StyleRate) StyleRateResponse {
	return StyleRateResponse{
		ID:             r.ID,
		StyleID:        r.StyleID,
		OrganizationID: r.OrganizationID,
		Rate:           r.Rate,
		EffectiveDate:  r.EffectiveDate,
		EndDate:        r.EndDate,
	}
}

// ResolvedRateResponse is the point-in-time answer: which rate applied to this
// style on this date.
type ResolvedRateResponse struct {
	StyleID       string          `json:"style_id"`
	Date          string          `json:"date"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effective_date"`
	RateID        string          `json:"rate_id"`
}
