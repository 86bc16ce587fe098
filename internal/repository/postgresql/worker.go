package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/worker"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

func (r *workerRepositoryImpl) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (name, organization_id, section_id, manual_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, organization_id, section_id, manual_id
	`

	var created worker.Worker
	err := q.QueryRow(ctx, query,
		newWorker.Name, newWorker.OrganizationID, newWorker.SectionID, newWorker.ManualID,
	).Scan(&created.ID, &created.Name, &created.OrganizationID, &created.SectionID, &created.ManualID)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}
	return created, nil
}

func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, organization_id, section_id, manual_id
		FROM workers
		WHERE id = $1 AND organization_id = $2
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&w.ID, &w.Name, &w.OrganizationID, &w.SectionID, &w.ManualID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}
	return w, nil
}

func (r *workerRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]worker.WorkerWithSection, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.name, w.organization_id, w.section_id, w.manual_id, s.name
		FROM workers w
		LEFT JOIN sections s ON s.id = w.section_id
		WHERE w.organization_id = $1
		ORDER BY w.name, w.id
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	workers := []worker.WorkerWithSection{}
	for rows.Next() {
		var w worker.WorkerWithSection
		if err := rows.Scan(&w.ID, &w.Name, &w.OrganizationID, &w.SectionID, &w.ManualID, &w.SectionName); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

func (r *workerRepositoryImpl) ListBySection(ctx context.Context, sectionID string, organizationID string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, organization_id, section_id, manual_id
		FROM workers
		WHERE section_id = $1 AND organization_id = $2
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query, sectionID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers by section: %w", err)
	}
	defer rows.Close()

	workers := []worker.Worker{}
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.OrganizationID, &w.SectionID, &w.ManualID); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

func (r *workerRepositoryImpl) ExistsByManualID(ctx context.Context, organizationID string, manualID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM workers WHERE organization_id = $1 AND manual_id = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, organizationID, manualID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check manual id: %w", err)
	}
	return exists, nil
}

func (r *workerRepositoryImpl) Update(ctx context.Context, id string, organizationID string, name string, sectionID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = $3, section_id = $4
		WHERE id = $1 AND organization_id = $2
	`

	tag, err := q.Exec(ctx, query, id, organizationID, name, sectionID)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

func (r *workerRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM workers WHERE id = $1 AND organization_id = $2`

	tag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}
