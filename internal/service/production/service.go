package production

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/production"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/worker"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
)

type ProductionServiceImpl struct {
	entryRepo  production.EntryRepository
	workerRepo worker.WorkerRepository
	styleRepo  style.StyleRepository
}

func NewProductionService(
	entryRepo production.EntryRepository,
	workerRepo worker.WorkerRepository,
	styleRepo style.StyleRepository,
) production.ProductionService {
	return &ProductionServiceImpl{
		entryRepo:  entryRepo,
		workerRepo: workerRepo,
		styleRepo:  styleRepo,
	}
}

func (s *ProductionServiceImpl) Create(ctx context.Context, req production.CreateEntryRequest) (production.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return production.EntryResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return production.EntryResponse{}, err
	}

	if err := s.checkReferences(ctx, req.WorkerID, req.StyleID, organizationID); err != nil {
		return production.EntryResponse{}, err
	}

	created, err := s.entryRepo.Create(ctx, production.Entry{
		WorkerID:       req.WorkerID,
		StyleID:        req.StyleID,
		OrganizationID: organizationID,
		Quantity:       req.Quantity,
		ProductionDate: req.ProductionDate,
	})
	if err != nil {
		return production.EntryResponse{}, err
	}

	return production.ToResponse(created), nil
}

func (s *ProductionServiceImpl) Update(ctx context.Context, req production.UpdateEntryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	// The entry must already exist in the caller's organization.
	if _, err := s.entryRepo.GetByID(ctx, req.ID, organizationID); err != nil {
		return err
	}

	if err := s.checkReferences(ctx, req.WorkerID, req.StyleID, organizationID); err != nil {
		return err
	}

	return s.entryRepo.Update(ctx, production.Entry{
		ID:             req.ID,
		WorkerID:       req.WorkerID,
		StyleID:        req.StyleID,
		OrganizationID: organizationID,
		Quantity:       req.Quantity,
		ProductionDate: req.ProductionDate,
	})
}

func (s *ProductionServiceImpl) Delete(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.entryRepo.Delete(ctx, id, organizationID)
}

func (s *ProductionServiceImpl) ListByWorker(ctx context.Context, workerID string, startDate, endDate string) ([]production.EntryDetailResponse, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.workerRepo.GetByID(ctx, workerID, organizationID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByWorkerAndRangeWithDetails(ctx, workerID, organizationID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	responses := make([]production.EntryDetailResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, production.ToDetailResponse(e))
	}
	return responses, nil
}

func (s *ProductionServiceImpl) checkReferences(ctx context.Context, workerID, styleID, organizationID string) error {
	if _, err := s.workerRepo.GetByID(ctx, workerID, organizationID); err != nil {
		return err
	}
	if _, err := s.styleRepo.GetByID(ctx, styleID, organizationID); err != nil {
		return err
	}
	return nil
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
