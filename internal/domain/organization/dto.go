package organization

import (
	"time"

	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/user"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
)

type CreateOrganizationRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JoinOrganizationRequest struct {
	InviteCode string `json:"invite_code"`
}

func (r *JoinOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidInviteCode(r.InviteCode) {
		errs = append(errs, validator.ValidationError{Field: "invite_code", Message: "must be an uppercase alphanumeric code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMemberRoleRequest struct {
	UserID string    `json:"-"`
	Role   user.Role `json:"role"`
}

func (r *UpdateMemberRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role != user.RoleAdmin && r.Role != user.RoleManager {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be admin or manager"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrganizationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	InviteCode  string    `json:"invite_code"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToResponse(o Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		InviteCode:  o.InviteCode,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
	}
}

type JoinOrganizationResponse struct {
	OrganizationID string    `json:"organization_id"`
	Role           user.Role `json:"role"`
}
