package worker

import "github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"

type CreateWorkerRequest struct {
	Name      string  `json:"name"`
	SectionID string  `json:"section_id"`
	ManualID  *string `json:"manual_id,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.SectionID) {
		errs = append(errs, validator.ValidationError{Field: "section_id", Message: "is required"})
	}
	if r.ManualID != nil && !validator.IsValidManualID(*r.ManualID) {
		errs = append(errs, validator.ValidationError{Field: "manual_id", Message: "must be 1-32 characters of letters, digits, dot, underscore or dash"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID        string `json:"-"`
	Name      string `json:"name"`
	SectionID string `json:"section_id"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.SectionID) {
		errs = append(errs, validator.ValidationError{Field: "section_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	OrganizationID string  `json:"organization_id"`
	SectionID      string  `json:"section_id"`
	SectionName    *string `json:"section_name,omitempty"`
	ManualID       *string `json:"manual_id,omitempty"`
}

func ToResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		OrganizationID: w.OrganizationID,
		SectionID:      w.SectionID,
		ManualID:       w.ManualID,
	}
}

func ToResponseWithSection(w WorkerWithSection) WorkerResponse {
	resp := ToResponse(w.Worker)
	resp.SectionName = w.SectionName
	return resp
}
