package production

import "github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"

type CreateEntryRequest struct {
	WorkerID       string `json:"worker_id"`
	StyleID        string `json:"style_id"`
	Quantity       int64  `json:"quantity"`
	ProductionDate string `json:"production_date"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if validator.IsEmpty(r.StyleID) {
		errs = append(errs, validator.ValidationError{Field: "style_id", Message: "is required"})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.ProductionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "production_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEntryRequest replaces every field of an entry (explicit correction).
type UpdateEntryRequest struct {
	ID             string `json:"-"`
	WorkerID       string `json:"worker_id"`
	StyleID        string `json:"style_id"`
	Quantity       int64  `json:"quantity"`
	ProductionDate string `json:"production_date"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if validator.IsEmpty(r.StyleID) {
		errs = append(errs, validator.ValidationError{Field: "style_id", Message: "is required"})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.ProductionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "production_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID             string `json:"id"`
	WorkerID       string `json:"worker_id"`
	StyleID        string `json:"style_id"`
	OrganizationID string `json:"organization_id"`
	Quantity       int64  `json:"quantity"`
	ProductionDate string `json:"production_date"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:             e.ID,
		WorkerID:       e.WorkerID,
		StyleID:        e.StyleID,
		OrganizationID: e.OrganizationID,
		Quantity:       e.Quantity,
		ProductionDate: e.ProductionDate,
	}
}

type EntryDetailResponse struct {
	EntryResponse
	WorkerName  *string `json:"worker_name,omitempty"`
	StyleName   *string `json:"style_name,omitempty"`
	SectionID   *string `json:"section_id,omitempty"`
	SectionName *string `json:"section_name,omitempty"`
}

func ToDetailResponse(e EntryWithDetails) EntryDetailResponse {
	return EntryDetailResponse{
		EntryResponse: ToResponse(e.Entry),
		WorkerName:    e.WorkerName,
		StyleName:     e.StyleName,
		SectionID:     e.SectionID,
		SectionName:   e.SectionName,
	}
}
