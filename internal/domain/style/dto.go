package style

import "github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"

type CreateStyleRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateStyleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStyleRequest struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateStyleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StyleResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	OrganizationID string  `json:"organization_id"`
}

func ToResponse(s Style) StyleResponse {
	return StyleResponse{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		OrganizationID: s.OrganizationID,
	}
}
