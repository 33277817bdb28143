package product

import (
	"github.com/oredipendenti/backend-go/internal/pkg/validator"
)

type CreateProductRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidSlug(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id may only contain a-z, 0-9, - and _",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
