package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/section"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/database"
)

type sectionRepositoryImpl struct {
	db *database.DB
}

func NewSectionRepository(db *database.DB) section.SectionRepository {
	return &sectionRepositoryImpl{db: db}
}

func (r *sectionRepositoryImpl) Create(ctx context.Context, newSection section.Section) (section.Section, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sections (name, organization_id, manager_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, organization_id, manager_id
	`

	var created section.Section
	err := q.QueryRow(ctx, query,
		newSection.Name, newSection.OrganizationID, newSection.ManagerID,
	).Scan(&created.ID, &created.Name, &created.OrganizationID, &created.ManagerID)
	if err != nil {
		return section.Section{}, fmt.Errorf("failed to create section: %w", err)
	}
	return created, nil
}

func (r *sectionRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (section.Section, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, organization_id, manager_id
		FROM sections
		WHERE id = $1 AND organization_id = $2
	`

	var s section.Section
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&s.ID, &s.Name, &s.OrganizationID, &s.ManagerID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return section.Section{}, section.ErrSectionNotFound
		}
		return section.Section{}, fmt.Errorf("failed to get section: %w", err)
	}
	return s, nil
}

func (r *sectionRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]section.SectionWithManager, error) {
	q := GetQuerier(ctx, r.db)

	// LEFT JOIN: a section whose manager was removed still lists, with a
	// null manager name.
	query := `
		SELECT s.id, s.name, s.organization_id, s.manager_id, u.name
		FROM sections s
		LEFT JOIN users u ON u.id = s.manager_id
		WHERE s.organization_id = $1
		ORDER BY s.name, s.id
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	sections := []section.SectionWithManager{}
	for rows.Next() {
		var s section.SectionWithManager
		if err := rows.Scan(&s.ID, &s.Name, &s.OrganizationID, &s.ManagerID, &s.ManagerName); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *sectionRepositoryImpl) ListByManager(ctx context.Context, managerID string, organizationID string) ([]section.Section, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, organization_id, manager_id
		FROM sections
		WHERE manager_id = $1 AND organization_id = $2
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query, managerID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections by manager: %w", err)
	}
	defer rows.Close()

	sections := []section.Section{}
	for rows.Next() {
		var s section.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.OrganizationID, &s.ManagerID); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *sectionRepositoryImpl) Update(ctx context.Context, id string, organizationID string, name string, managerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sections
		SET name = $3, manager_id = $4
		WHERE id = $1 AND organization_id = $2
	`

	tag, err := q.Exec(ctx, query, id, organizationID, name, managerID)
	if err != nil {
		return fmt.Errorf("failed to update section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return section.ErrSectionNotFound
	}
	return nil
}

func (r *sectionRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM sections WHERE id = $1 AND organization_id = $2`

	tag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return section.ErrSectionNotFound
	}
	return nil
}
