package report

import (
	"context"
	"time"

	"github.com/mobinh8585/attendance-system/internal/domain/attendance"
	"github.com/mobinh8585/attendance-system/internal/domain/report"
	"github.com/mobinh8585/attendance-system/internal/domain/worker"
	"github.com/mobinh8585/attendance-system/internal/pkg/jalali"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	worker.WorkerRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, workerRepo worker.WorkerRepository) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		WorkerRepository:     workerRepo,
	}
}

// Summarize aggregates a set of records into the monthly numbers. Pure
// computation over whatever was fetched; it does not touch storage.
func Summarize(records []attendance.Attendance) report.MonthlySummary {
	summary := report.MonthlySummary{DaysWorked: len(records)}
	for _, r := range records {
		summary.TotalHours += r.TotalHours
	}
	if summary.DaysWorked > 0 {
		summary.AverageHours = summary.TotalHours / float64(summary.DaysWorked)
	}
	return summary
}

// Monthly implements report.ReportService. The month is a Jalali month; its
// Gregorian bounds come from the calendar package and are handed to the
// range query as a half-open interval.
func (s *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, req.WorkerID)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	start, end, err := jalali.MonthBounds(req.Year, req.Month)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	records, err := s.AttendanceRepository.ListByWorker(ctx, req.WorkerID, &attendance.DateRange{Start: start, End: end})
	if err != nil {
		return report.MonthlyReport{}, err
	}

	return report.MonthlyReport{
		WorkerID:        w.ID,
		WorkerName:      w.FullName,
		PersonnelNumber: w.PersonnelNumber,
		Year:            req.Year,
		Month:           req.Month,
		MonthName:       jalali.MonthName(req.Month),
		PeriodStart:     jalali.FormatDate(start),
		PeriodEnd:       jalali.FormatDate(end),
		GeneratedAt:     jalali.FormatDateTime(time.Now()),
		Summary:         Summarize(records),
		Records:         attendance.ToResponses(records),
	}, nil
}
