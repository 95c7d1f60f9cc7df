package report

import (
	"github.com/mobinh8585/attendance-system/internal/domain/attendance"
	"github.com/mobinh8585/attendance-system/internal/pkg/validator"
)

// MonthlyReportRequest selects one worker and one Jalali month.
type MonthlyReportRequest struct {
	WorkerID string `json:"worker_id"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	// Jalali years; 1390s-1400s in practice
	if r.Year < 1300 || r.Year > 1500 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a Jalali year between 1300 and 1500",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlySummary is the aggregate over one worker-month.
type MonthlySummary struct {
	DaysWorked   int     `json:"days_worked"`
	TotalHours   float64 `json:"total_hours"`
	AverageHours float64 `json:"average_hours_per_day"`
}

type MonthlyReport struct {
	WorkerID        string `json:"worker_id"`
	WorkerName      string `json:"worker_name"`
	PersonnelNumber string `json:"personnel_number"`
	Year            int    `json:"year"`
	Month           int    `json:"month"`
	MonthName       string `json:"month_name"`
	PeriodStart     string `json:"period_start"`
	PeriodEnd       string `json:"period_end"`
	GeneratedAt     string `json:"generated_at"`

	Summary MonthlySummary                  `json:"summary"`
	Records []attendance.AttendanceResponse `json:"records"`
}
