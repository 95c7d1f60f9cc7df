package attendance

import (
	"time"

	"github.com/mobinh8585/attendance-system/internal/pkg/validator"
)

// Persian status messages shown to workers, carried over from the previous
// front end so operators see familiar wording.
const (
	MsgClockInRecorded  = "ورود با موفقیت ثبت شد"
	MsgClockOutRecorded = "خروج با موفقیت ثبت شد. مدت حضور: %s ساعت"
	MsgTimeCorrected    = "زمان با موفقیت ویرایش شد"
)

// TimeField names the timestamp a correction targets.
type TimeField string

const (
	FieldEntry TimeField = "entry"
	FieldExit  TimeField = "exit"
)

type CorrectTimeRequest struct {
	RecordID string    `json:"record_id"`
	Field    TimeField `json:"field"`
	NewTime  time.Time `json:"new_time"`
}

func (r *CorrectTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if r.Field != FieldEntry && r.Field != FieldExit {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field must be \"entry\" or \"exit\"",
		})
	}

	if r.NewTime.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "new_time",
			Message: "new_time is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DateRange is a half-open [Start, End) filter over the record's calendar
// date.
type DateRange struct {
	Start time.Time
	End   time.Time
}

type AttendanceResponse struct {
	ID              string  `json:"id"`
	WorkerID        string  `json:"worker_id"`
	Date            string  `json:"date"`
	JalaliDate      string  `json:"jalali_date"`
	EntryTime       *string `json:"entry_time"`
	ExitTime        *string `json:"exit_time"`
	TotalHours      float64 `json:"total_hours"`
	WorkerName      *string `json:"worker_name,omitempty"`
	PersonnelNumber *string `json:"personnel_number,omitempty"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:              a.ID,
		WorkerID:        a.WorkerID,
		Date:            a.Date.Format("2006-01-02"),
		JalaliDate:      a.JalaliDate,
		EntryTime:       timePtrToString(a.EntryTime),
		ExitTime:        timePtrToString(a.ExitTime),
		TotalHours:      a.TotalHours,
		WorkerName:      a.WorkerName,
		PersonnelNumber: a.PersonnelNumber,
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, ToResponse(a))
	}
	return responses
}
