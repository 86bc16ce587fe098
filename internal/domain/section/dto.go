package section

import "github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"

type CreateSectionRequest struct {
	Name      string `json:"name"`
	ManagerID string `json:"manager_id"`
}

func (r *CreateSectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSectionRequest struct {
	ID        string `json:"-"`
	Name      string `json:"name"`
	ManagerID string `json:"manager_id"`
}

func (r *UpdateSectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SectionResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	OrganizationID string  `json:"organization_id"`
	ManagerID      string  `json:"manager_id"`
	ManagerName    *string `json:"manager_name,omitempty"`
}

func ToResponse(s Section) SectionResponse {
	return SectionResponse{
		ID:             s.ID,
		Name:           s.Name,
		OrganizationID: s.OrganizationID,
		ManagerID:      s.ManagerID,
	}
}

func ToResponseWithManager(s SectionWithManager) SectionResponse {
	resp := ToResponse(s.Section)
	resp.ManagerName = s.ManagerName
	return resp
}
