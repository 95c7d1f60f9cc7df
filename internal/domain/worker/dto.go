package worker

import (
	"github.com/mobinh8585/attendance-system/internal/pkg/validator"
)

type RegisterWorkerRequest struct {
	PersonnelNumber string  `json:"personnel_number"`
	FullName        string  `json:"full_name"`
	Phone           *string `json:"phone,omitempty"`
}

func (r *RegisterWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_number",
			Message: "personnel_number is required",
		})
	} else if !validator.IsValidPersonnelNumber(r.PersonnelNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_number",
			Message: "personnel_number must be 1-20 digits",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateWorkerRequest carries the administrator-editable fields. The
// personnel number is immutable after registration.
type UpdateWorkerRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName == nil && r.Phone == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "at least one of full_name or phone is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name cannot be empty",
		})
	}

	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID              string  `json:"id"`
	PersonnelNumber string  `json:"personnel_number"`
	FullName        string  `json:"full_name"`
	Phone           *string `json:"phone,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:              w.ID,
		PersonnelNumber: w.PersonnelNumber,
		FullName:        w.FullName,
		Phone:           w.Phone,
		CreatedAt:       w.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
