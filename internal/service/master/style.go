package master

import (
	"context"

	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
)

type StyleServiceImpl struct {
	styleRepo style.StyleRepository
}

func NewStyleService(styleRepo style.StyleRepository) style.StyleService {
	return &StyleServiceImpl{styleRepo: styleRepo}
}

func (s *StyleServiceImpl) Create(ctx context.Context, req style.CreateStyleRequest) (style.StyleResponse, error) {
	if err := req.Validate(); err != nil {
		return style.StyleResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return style.StyleResponse{}, err
	}

	created, err := s.styleRepo.Create(ctx, style.Style{
		Name:           req.Name,
		Description:    req.Description,
		OrganizationID: organizationID,
	})
	if err != nil {
		return style.StyleResponse{}, err
	}

	return style.ToResponse(created), nil
}

func (s *StyleServiceImpl) Get(ctx context.Context, id string) (style.StyleResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return style.StyleResponse{}, err
	}

	found, err := s.styleRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return style.StyleResponse{}, err
	}

	return style.ToResponse(found), nil
}

func (s *StyleServiceImpl) List(ctx context.Context) ([]style.StyleResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	styles, err := s.styleRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]style.StyleResponse, 0, len(styles))
	for _, st := range styles {
		responses = append(responses, style.ToResponse(st))
	}
	return responses, nil
}

func (s *StyleServiceImpl) Update(ctx context.Context, req style.UpdateStyleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.styleRepo.Update(ctx, req.ID, organizationID, req.Name, req.Description)
}

func (s *StyleServiceImpl) Delete(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.styleRepo.Delete(ctx, id, organizationID)
}
