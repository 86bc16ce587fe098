package rate

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/rate"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
)

type RateServiceImpl struct {
	styleRateRepo rate.StyleRateRepository
	styleRepo     style.StyleRepository
}

func NewRateService(styleRateRepo rate.StyleRateRepository, styleRepo style.StyleRepository) rate.RateService {
	return &RateServiceImpl{
		styleRateRepo: styleRateRepo,
		styleRepo:     styleRepo,
	}
}

func (s *RateServiceImpl) CreateStyleRate(ctx context.Context, req rate.CreateStyleRateRequest) (rate.StyleRateResponse, error) {
	if err := req.Validate(); err != nil {
		return rate.StyleRateResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return rate.StyleRateResponse{}, err
	}

	// The style must exist in the caller's organization before a rate can
	// hang off it.
	if _, err := s.styleRepo.GetByID(ctx, req.StyleID, organizationID); err != nil {
		return rate.StyleRateResponse{}, err
	}

	created, err := s.styleRateRepo.Create(ctx, rate.StyleRate{
		StyleID:        req.StyleID,
		OrganizationID: organizationID,
		Rate:           req.Rate,
		EffectiveDate:  req.EffectiveDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		return rate.StyleRateResponse{}, err
	}

	return rate.ToResponse(created), nil
}

func (s *RateServiceImpl) ListStyleRates(ctx context.Context, styleID string) ([]rate.StyleRateResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.styleRepo.GetByID(ctx, styleID, organizationID); err != nil {
		return nil, err
	}

	rates, err := s.styleRateRepo.ListByStyle(ctx, styleID, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]rate.StyleRateResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, rate.ToResponse(r))
	}
	return responses, nil
}

func (s *RateServiceImpl) ResolveRate(ctx context.Context, styleID string, onDate string) (rate.ResolvedRateResponse, error) {
	if _, ok := validator.IsValidDate(onDate); !ok {
		return rate.ResolvedRateResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return rate.ResolvedRateResponse{}, err
	}

	if _, err := s.styleRepo.GetByID(ctx, styleID, organizationID); err != nil {
		return rate.ResolvedRateResponse{}, err
	}

	rates, err := s.styleRateRepo.ListByStyle(ctx, styleID, organizationID)
	if err != nil {
		return rate.ResolvedRateResponse{}, err
	}

	resolved, err := rate.Resolve(rates, onDate, rate.ResolveOptions{})
	if err != nil {
		return rate.ResolvedRateResponse{}, err
	}

	return rate.ResolvedRateResponse{
		StyleID:       styleID,
		Date:          onDate,
		Rate:          resolved.Rate,
		EffectiveDate: resolved.EffectiveDate,
		RateID:        resolved.ID,
	}, nil
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
