package invitation

import (
	"time"

	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/user"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
)

type CreateInvitationRequest struct {
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

func (r *CreateInvitationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Role != user.RoleAdmin && r.Role != user.RoleManager {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be admin or manager"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InvitationResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Email          string    `json:"email"`
	Role           user.Role `json:"role"`
	Status         Status    `json:"status"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToResponse(i Invitation) InvitationResponse {
	return InvitationResponse{
		ID:             i.ID,
		OrganizationID: i.OrganizationID,
		Email:          i.Email,
		Role:           i.Role,
		Status:         i.Status,
		Token:          i.Token,
		ExpiresAt:      i.ExpiresAt,
		CreatedAt:      i.CreatedAt,
	}
}
