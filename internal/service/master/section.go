package master

import (
	"context"
	"errors"

	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/section"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/user"
)

type SectionServiceImpl struct {
	sectionRepo section.SectionRepository
	userRepo    user.UserRepository
}

func NewSectionService(sectionRepo section.SectionRepository, userRepo user.UserRepository) section.SectionService {
	return &SectionServiceImpl{
		sectionRepo: sectionRepo,
		userRepo:    userRepo,
	}
}

func (s *SectionServiceImpl) Create(ctx context.Context, req section.CreateSectionRequest) (section.SectionResponse, error) {
	if err := req.Validate(); err != nil {
		return section.SectionResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return section.SectionResponse{}, err
	}

	if err := s.checkManager(ctx, req.ManagerID, organizationID); err != nil {
		return section.SectionResponse{}, err
	}

	created, err := s.sectionRepo.Create(ctx, section.Section{
		Name:           req.Name,
		OrganizationID: organizationID,
		ManagerID:      req.ManagerID,
	})
	if err != nil {
		return section.SectionResponse{}, err
	}

	return section.ToResponse(created), nil
}

func (s *SectionServiceImpl) Get(ctx context.Context, id string) (section.SectionResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return section.SectionResponse{}, err
	}

	found, err := s.sectionRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return section.SectionResponse{}, err
	}

	return section.ToResponse(found), nil
}

func (s *SectionServiceImpl) List(ctx context.Context) ([]section.SectionResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]section.SectionResponse, 0, len(sections))
	for _, sec := range sections {
		responses = append(responses, section.ToResponseWithManager(sec))
	}
	return responses, nil
}

func (s *SectionServiceImpl) Update(ctx context.Context, req section.UpdateSectionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.checkManager(ctx, req.ManagerID, organizationID); err != nil {
		return err
	}

	return s.sectionRepo.Update(ctx, req.ID, organizationID, req.Name, req.ManagerID)
}

func (s *SectionServiceImpl) Delete(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.sectionRepo.Delete(ctx, id, organizationID)
}

// checkManager verifies the manager is a member of the organization.
func (s *SectionServiceImpl) checkManager(ctx context.Context, managerID string, organizationID string) error {
	manager, err := s.userRepo.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return section.ErrManagerNotFound
		}
		return err
	}
	if manager.OrganizationID == nil || *manager.OrganizationID != organizationID {
		return section.ErrManagerNotFound
	}
	return nil
}
