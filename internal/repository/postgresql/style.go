package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/database"
)

type styleRepositoryImpl struct {
	db *database.DB
}

func NewStyleRepository(db *database.DB) style.StyleRepository {
	return &styleRepositoryImpl{db: db}
}

func (r *styleRepositoryImpl) Create(ctx context.Context, newStyle style.Style) (style.Style, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO styles (name, description, organization_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, organization_id
	`

	var created style.Style
	err := q.QueryRow(ctx, query,
		newStyle.Name, newStyle.Description, newStyle.OrganizationID,
	).Scan(&created.ID, &created.Name, &created.Description, &created.OrganizationID)
	if err != nil {
		return style.Style{}, fmt.Errorf("failed to create style: %w", err)
	}
	return created, nil
}

func (r *styleRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (style.Style, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, organization_id
		FROM styles
		WHERE id = $1 AND organization_id = $2
	`

	var s style.Style
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&s.ID, &s.Name, &s.Description, &s.OrganizationID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return style.Style{}, style.ErrStyleNotFound
		}
		return style.Style{}, fmt.Errorf("failed to get style: %w", err)
	}
	return s, nil
}

func (r *styleRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]style.Style, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, organization_id
		FROM styles
		WHERE organization_id = $1
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list styles: %w", err)
	}
	defer rows.Close()

	styles := []style.Style{}
	for rows.Next() {
		var s style.Style
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.OrganizationID); err != nil {
			return nil, fmt.Errorf("failed to scan style: %w", err)
		}
		styles = append(styles, s)
	}
	return styles, rows.Err()
}

func (r *styleRepositoryImpl) Update(ctx context.Context, id string, organizationID string, name string, description *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE styles
		SET name = $3, description = $4
		WHERE id = $1 AND organization_id = $2
	`

	tag, err := q.Exec(ctx, query, id, organizationID, name, description)
	if err != nil {
		return fmt.Errorf("failed to update style: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return style.ErrStyleNotFound
	}
	return nil
}

func (r *styleRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM styles WHERE id = $1 AND organization_id = $2`

	tag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete style: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return style.ErrStyleNotFound
	}
	return nil
}
