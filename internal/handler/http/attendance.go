package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mobinh8585/attendance-system/internal/domain/attendance"
	"github.com/mobinh8585/attendance-system/internal/handler/http/middleware"
	"github.com/mobinh8585/attendance-system/internal/handler/http/response"
	"github.com/mobinh8585/attendance-system/internal/pkg/jalali"
	"github.com/mobinh8585/attendance-system/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	MyRecords(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	CorrectTime(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// parseDateRange reads the optional from/to query parameters (Gregorian
// YYYY-MM-DD, both inclusive) into the repository's half-open range.
func parseDateRange(r *http.Request) (*attendance.DateRange, error) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("from and to must be supplied together")
	}

	start, ok := validator.IsValidDate(from)
	if !ok {
		return nil, fmt.Errorf("invalid from date: %s", from)
	}
	end, ok := validator.IsValidDate(to)
	if !ok {
		return nil, fmt.Errorf("invalid to date: %s", to)
	}

	return &attendance.DateRange{Start: start, End: end.AddDate(0, 0, 1)}, nil
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	workerID := middleware.WorkerID(r)
	if workerID == "" {
		response.Forbidden(w, "worker token required")
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, attendance.MsgClockInRecorded, result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	workerID := middleware.WorkerID(r)
	if workerID == "" {
		response.Forbidden(w, "worker token required")
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	hours := jalali.ToPersianDigits(fmt.Sprintf("%.2f", result.TotalHours))
	response.SuccessWithMessage(w, fmt.Sprintf(attendance.MsgClockOutRecorded, hours), result)
}

// MyRecords implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyRecords(w http.ResponseWriter, r *http.Request) {
	workerID := middleware.WorkerID(r)
	if workerID == "" {
		response.Forbidden(w, "worker token required")
		return
	}

	rng, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.attendanceService.QueryWorker(r.Context(), workerID, rng)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler. Admin browse over all records, joined
// with worker identity. An optional worker_id narrows to one worker.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rng, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		result, err := h.attendanceService.QueryWorker(r.Context(), workerID, rng)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.attendanceService.QueryAll(r.Context(), rng)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CorrectTime implements AttendanceHandler.
func (h *attendanceHandlerImpl) CorrectTime(w http.ResponseWriter, r *http.Request) {
	var req attendance.CorrectTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.RecordID = chi.URLParam(r, "id")

	result, err := h.attendanceService.CorrectTime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, attendance.MsgTimeCorrected, result)
}
