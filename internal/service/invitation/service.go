package invitation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/config"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/invitation"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
)

type InvitationServiceImpl struct {
	invitationRepo invitation.InvitationRepository
	inviteConfig   config.InviteConfig
}

func NewInvitationService(
	invitationRepo invitation.InvitationRepository,
	inviteConfig config.InviteConfig,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		invitationRepo: invitationRepo,
		inviteConfig:   inviteConfig,
	}
}

func (s *InvitationServiceImpl) Create(ctx context.Context, req invitation.CreateInvitationRequest) (invitation.InvitationResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.InvitationResponse{}, err
	}

	organizationID, invitedBy, err := s.callerFromContext(ctx)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	existing, err := s.invitationRepo.GetPendingByEmail(ctx, organizationID, req.Email)
	switch {
	case err == nil:
		if existing.CanBeAccepted() {
			return invitation.InvitationResponse{}, invitation.ErrAlreadyInvited
		}
		// A stale pending invitation past its expiry does not block a new one.
		if updateErr := s.invitationRepo.UpdateStatus(ctx, existing.ID, invitation.StatusExpired); updateErr != nil {
			return invitation.InvitationResponse{}, updateErr
		}
	case errors.Is(err, invitation.ErrInvitationNotFound):
	default:
		return invitation.InvitationResponse{}, err
	}

	created, err := s.invitationRepo.Create(ctx, invitation.Invitation{
		OrganizationID: organizationID,
		Email:          req.Email,
		Role:           req.Role,
		InvitedBy:      invitedBy,
		Status:         invitation.StatusPending,
		Token:          uuid.NewString(),
		ExpiresAt:      time.Now().Add(time.Duration(s.inviteConfig.TokenExpiryHours) * time.Hour),
	})
	if err != nil {
		return invitation.InvitationResponse{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	return invitation.ToResponse(created), nil
}

func (s *InvitationServiceImpl) List(ctx context.Context) ([]invitation.InvitationResponse, error) {
	organizationID, _, err := s.callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invitations, err := s.invitationRepo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]invitation.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		responses = append(responses, invitation.ToResponse(inv))
	}
	return responses, nil
}

func (s *InvitationServiceImpl) GetByToken(ctx context.Context, token string) (invitation.InvitationResponse, error) {
	inv, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}

	if inv.Status == invitation.StatusPending && inv.IsExpired() {
		return invitation.InvitationResponse{}, invitation.ErrInvitationExpired
	}

	return invitation.ToResponse(inv), nil
}

func (s *InvitationServiceImpl) callerFromContext(ctx context.Context) (organizationID string, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", err
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", "", organization.ErrNotMember
	}
	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim missing from token")
	}
	return organizationID, userID, nil
}
