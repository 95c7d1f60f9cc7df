package auth

import (
	"github.com/mobinh8585/attendance-system/internal/pkg/validator"
)

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *AdminLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WorkerLoginRequest identifies a worker by personnel number alone; the
// resulting token can only clock in/out and read its own history.
type WorkerLoginRequest struct {
	PersonnelNumber string `json:"personnel_number"`
}

func (r *WorkerLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_number",
			Message: "personnel_number is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	IsAdmin     bool   `json:"is_admin"`
}
