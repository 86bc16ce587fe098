package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

func (r *organizationRepositoryImpl) Create(ctx context.Context, newOrganization organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (name, description, invite_code, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, invite_code, created_by, created_at
	`

	var created organization.Organization
	err := q.QueryRow(ctx, query,
		newOrganization.Name, newOrganization.Description,
		newOrganization.InviteCode, newOrganization.CreatedBy,
	).Scan(
		&created.ID, &created.Name, &created.Description,
		&created.InviteCode, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		return organization.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}
	return created, nil
}

func (r *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, invite_code, created_by, created_at
		FROM organizations
		WHERE id = $1
	`

	var o organization.Organization
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.Description, &o.InviteCode, &o.CreatedBy, &o.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}
	return o, nil
}

func (r *organizationRepositoryImpl) GetByInviteCode(ctx context.Context, inviteCode string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, invite_code, created_by, created_at
		FROM organizations
		WHERE invite_code = $1
	`

	var o organization.Organization
	err := q.QueryRow(ctx, query, inviteCode).Scan(
		&o.ID, &o.Name, &o.Description, &o.InviteCode, &o.CreatedBy, &o.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrInvalidInviteCode
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization by invite code: %w", err)
	}
	return o, nil
}

func (r *organizationRepositoryImpl) ExistsByInviteCode(ctx context.Context, inviteCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM organizations WHERE invite_code = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, inviteCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check invite code: %w", err)
	}
	return exists, nil
}
