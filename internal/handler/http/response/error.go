package response

import (
	"errors"
	"net/http"

	"github.com/mobinh8585/attendance-system/internal/domain/attendance"
	"github.com/mobinh8585/attendance-system/internal/domain/auth"
	"github.com/mobinh8585/attendance-system/internal/domain/worker"
	"github.com/mobinh8585/attendance-system/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. The codes are the stable
// failure enumeration front ends key on; the worker-facing clock messages
// stay in Persian as the terminals always displayed them.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminOnly):
		Forbidden(w, err.Error())

	// Worker
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrPersonnelNumberExists):
		Error(w, http.StatusConflict, "PERSONNEL_NUMBER_EXISTS", "Personnel number already registered")
	case errors.Is(err, worker.ErrNothingToUpdate):
		BadRequest(w, err.Error())

	// Attendance lifecycle
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Error(w, http.StatusConflict, "ALREADY_CLOCKED_IN", "شما قبلاً ورود خود را ثبت کرده‌اید")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Error(w, http.StatusConflict, "NOT_CLOCKED_IN", "ابتدا باید ورود خود را ثبت کنید")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidField):
		BadRequest(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
