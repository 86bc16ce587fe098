package master

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/section"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo  worker.WorkerRepository
	sectionRepo section.SectionRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository, sectionRepo section.SectionRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		workerRepo:  workerRepo,
		sectionRepo: sectionRepo,
	}
}

func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if err := s.checkSection(ctx, req.SectionID, organizationID); err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.ManualID != nil {
		exists, err := s.workerRepo.ExistsByManualID(ctx, organizationID, *req.ManualID)
		if err != nil {
			return worker.WorkerResponse{}, err
		}
		if exists {
			return worker.WorkerResponse{}, worker.ErrManualIDExists
		}
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		Name:           req.Name,
		OrganizationID: organizationID,
		SectionID:      req.SectionID,
		ManualID:       req.ManualID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Concurrent create slipped past the existence check; the
			// partial unique index caught it.
			return worker.WorkerResponse{}, worker.ErrManualIDExists
		}
		return worker.WorkerResponse{}, err
	}

	return worker.ToResponse(created), nil
}

func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	found, err := s.workerRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.ToResponse(found), nil
}

func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.ToResponseWithSection(w))
	}
	return responses, nil
}

func (s *WorkerServiceImpl) ListBySection(ctx context.Context, sectionID string) ([]worker.WorkerResponse, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.checkSection(ctx, sectionID, organizationID); err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.ListBySection(ctx, sectionID, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.ToResponse(w))
	}
	return responses, nil
}

func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.checkSection(ctx, req.SectionID, organizationID); err != nil {
		return err
	}

	return s.workerRepo.Update(ctx, req.ID, organizationID, req.Name, req.SectionID)
}

func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.workerRepo.Delete(ctx, id, organizationID)
}

func (s *WorkerServiceImpl) checkSection(ctx context.Context, sectionID string, organizationID string) error {
	_, err := s.sectionRepo.GetByID(ctx, sectionID, organizationID)
	if err != nil {
		if errors.Is(err, section.ErrSectionNotFound) {
			return worker.ErrSectionNotFound
		}
		return err
	}
	return nil
}
