package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/config"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/invitation"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/user"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/database"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/invite"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/repository/postgresql"
)

type OrganizationServiceImpl struct {
	db               *database.DB
	organizationRepo organization.OrganizationRepository
	userRepo         user.UserRepository
	invitationRepo   invitation.InvitationRepository
	inviteConfig     config.InviteConfig
}

func NewOrganizationService(
	db *database.DB,
	organizationRepo organization.OrganizationRepository,
	userRepo user.UserRepository,
	invitationRepo invitation.InvitationRepository,
	inviteConfig config.InviteConfig,
) organization.OrganizationService {
	return &OrganizationServiceImpl{
		db:               db,
		organizationRepo: organizationRepo,
		userRepo:         userRepo,
		invitationRepo:   invitationRepo,
		inviteConfig:     inviteConfig,
	}
}

func (s *OrganizationServiceImpl) Create(ctx context.Context, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	caller, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	if caller.OrganizationID != nil {
		return organization.OrganizationResponse{}, organization.ErrAlreadyMember
	}

	code, err := invite.GenerateUniqueCode(
		s.inviteConfig.CodeLength,
		s.inviteConfig.MaxCodeAttempts,
		func(candidate string) (bool, error) {
			return s.organizationRepo.ExistsByInviteCode(ctx, candidate)
		},
	)
	if err != nil {
		return organization.OrganizationResponse{}, fmt.Errorf("failed to generate invite code: %w", err)
	}

	var created organization.Organization
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.organizationRepo.Create(txCtx, organization.Organization{
			Name:        req.Name,
			Description: req.Description,
			InviteCode:  code,
			CreatedBy:   userID,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				// Lost the race on the invite code between the existence
				// check and the insert.
				return organization.ErrInviteCodeTaken
			}
			return err
		}
		return s.userRepo.SetMembership(txCtx, userID, created.ID, user.RoleAdmin)
	})
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	return organization.ToResponse(created), nil
}

func (s *OrganizationServiceImpl) Join(ctx context.Context, req organization.JoinOrganizationRequest) (organization.JoinOrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.JoinOrganizationResponse{}, err
	}

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return organization.JoinOrganizationResponse{}, err
	}

	caller, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return organization.JoinOrganizationResponse{}, err
	}
	if caller.OrganizationID != nil {
		return organization.JoinOrganizationResponse{}, organization.ErrAlreadyMember
	}

	org, err := s.organizationRepo.GetByInviteCode(ctx, req.InviteCode)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			return organization.JoinOrganizationResponse{}, organization.ErrInvalidInviteCode
		}
		return organization.JoinOrganizationResponse{}, err
	}

	role := user.RoleManager
	var pendingInvitation *invitation.Invitation
	inv, err := s.invitationRepo.GetPendingByEmail(ctx, org.ID, caller.Email)
	switch {
	case err == nil:
		if inv.CanBeAccepted() {
			role = inv.Role
			pendingInvitation = &inv
		}
	case errors.Is(err, invitation.ErrInvitationNotFound):
		// No invitation on file; the default manager role applies.
	default:
		return organization.JoinOrganizationResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.userRepo.SetMembership(txCtx, userID, org.ID, role); err != nil {
			return err
		}
		if pendingInvitation != nil {
			return s.invitationRepo.UpdateStatus(txCtx, pendingInvitation.ID, invitation.StatusAccepted)
		}
		return nil
	})
	if err != nil {
		return organization.JoinOrganizationResponse{}, err
	}

	return organization.JoinOrganizationResponse{
		OrganizationID: org.ID,
		Role:           role,
	}, nil
}

func (s *OrganizationServiceImpl) GetMine(ctx context.Context) (organization.OrganizationResponse, error) {
	organizationID, err := s.organizationIDFromContext(ctx)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	org, err := s.organizationRepo.GetByID(ctx, organizationID)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	return organization.ToResponse(org), nil
}

func (s *OrganizationServiceImpl) ListMembers(ctx context.Context) ([]user.UserResponse, error) {
	organizationID, err := s.organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.userRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, user.ToResponse(m))
	}
	return responses, nil
}

func (s *OrganizationServiceImpl) UpdateMemberRole(ctx context.Context, req organization.UpdateMemberRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	organizationID, err := s.organizationIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.userRepo.UpdateRole(ctx, req.UserID, organizationID, req.Role)
}

func (s *OrganizationServiceImpl) CompleteOnboarding(ctx context.Context) error {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.userRepo.CompleteOnboarding(ctx, userID)
}

func (s *OrganizationServiceImpl) userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim missing from token")
	}
	return userID, nil
}

func (s *OrganizationServiceImpl) organizationIDFromContext(ctx context.Context) (string, error) {
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
