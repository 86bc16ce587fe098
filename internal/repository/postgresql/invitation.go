package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/invitation"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/database"
)

type invitationRepositoryImpl struct {
	db *database.DB
}

func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

const invitationColumns = `id, organization_id, email, role, invited_by, status, token, expires_at, created_at`

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var i invitation.Invitation
	err := row.Scan(
		&i.ID, &i.OrganizationID, &i.Email, &i.Role, &i.InvitedBy,
		&i.Status, &i.Token, &i.ExpiresAt, &i.CreatedAt,
	)
	return i, err
}

func (r *invitationRepositoryImpl) Create(ctx context.Context, newInvitation invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitations (organization_id, email, role, invited_by, status, token, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + invitationColumns

	created, err := scanInvitation(q.QueryRow(ctx, query,
		newInvitation.OrganizationID, newInvitation.Email, newInvitation.Role,
		newInvitation.InvitedBy, newInvitation.Status, newInvitation.Token,
		newInvitation.ExpiresAt,
	))
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}
	return created, nil
}

func (r *invitationRepositoryImpl) GetByToken(ctx context.Context, token string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE token = $1`

	i, err := scanInvitation(q.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation by token: %w", err)
	}
	return i, nil
}

func (r *invitationRepositoryImpl) GetPendingByEmail(ctx context.Context, organizationID string, email string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE organization_id = $1 AND email = $2 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1
	`

	i, err := scanInvitation(q.QueryRow(ctx, query, organizationID, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get pending invitation: %w", err)
	}
	return i, nil
}

func (r *invitationRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string) ([]invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE organization_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	invitations := []invitation.Invitation{}
	for rows.Next() {
		i, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, i)
	}
	return invitations, rows.Err()
}

func (r *invitationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status invitation.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE invitations SET status = $2 WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update invitation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invitation.ErrInvitationNotFound
	}
	return nil
}
