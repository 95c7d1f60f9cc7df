package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/mobinh8585/attendance-system/internal/domain/attendance"
	"github.com/mobinh8585/attendance-system/internal/domain/worker"
	"github.com/mobinh8585/attendance-system/internal/pkg/database"
	"github.com/mobinh8585/attendance-system/internal/pkg/jalali"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	worker.WorkerRepository

	// now is swappable so tests can pin the clock
	now func() time.Time
}

func NewAttendanceService(tx database.Transactor, attendanceRepo attendance.AttendanceRepository, workerRepo worker.WorkerRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		WorkerRepository:     workerRepo,
		now:                  time.Now,
	}
}

// dayOf truncates an instant to its local calendar day, the grouping key for
// the one-open-session invariant.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClockIn implements attendance.AttendanceService. The open-session check
// and the insert run in one transaction; the partial unique index catches
// whatever slips between concurrent transactions.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, workerID string) (attendance.AttendanceResponse, error) {
	if _, err := a.WorkerRepository.GetByID(ctx, workerID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()
	today := dayOf(now)

	var created attendance.Attendance
	err := a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		open, err := a.AttendanceRepository.GetOpenByWorkerAndDate(txCtx, workerID, today)
		if err != nil {
			return fmt.Errorf("failed to check for open session: %w", err)
		}
		if open != nil {
			return attendance.ErrAlreadyClockedIn
		}

		entry := now
		created, err = a.AttendanceRepository.Create(txCtx, attendance.Attendance{
			WorkerID:   workerID,
			EntryTime:  &entry,
			Date:       today,
			JalaliDate: jalali.FormatDate(now),
		})
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, workerID string) (attendance.AttendanceResponse, error) {
	if _, err := a.WorkerRepository.GetByID(ctx, workerID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()
	today := dayOf(now)

	var closed attendance.Attendance
	err := a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		open, err := a.AttendanceRepository.GetOpenByWorkerAndDate(txCtx, workerID, today)
		if err != nil {
			return fmt.Errorf("failed to find open session: %w", err)
		}
		if open == nil {
			return attendance.ErrNotClockedIn
		}

		exit := now
		open.ExitTime = &exit
		open.ComputeTotalHours()

		if err := a.AttendanceRepository.SetExit(txCtx, open.ID, exit, open.TotalHours); err != nil {
			return err
		}
		closed = *open
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(closed), nil
}

// CorrectTime implements attendance.AttendanceService. Either timestamp may
// be overwritten; the stored hours are always re-derived, clamping invalid
// intervals to zero instead of rejecting them.
func (a *AttendanceServiceImpl) CorrectTime(ctx context.Context, req attendance.CorrectTimeRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	newTime := req.NewTime
	switch req.Field {
	case attendance.FieldEntry:
		record.EntryTime = &newTime
	case attendance.FieldExit:
		record.ExitTime = &newTime
	default:
		return attendance.AttendanceResponse{}, attendance.ErrInvalidField
	}
	record.ComputeTotalHours()

	if err := a.AttendanceRepository.UpdateTimes(ctx, record.ID, record.EntryTime, record.ExitTime, record.TotalHours); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// QueryWorker implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) QueryWorker(ctx context.Context, workerID string, rng *attendance.DateRange) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByWorker(ctx, workerID, rng)
	if err != nil {
		return nil, err
	}
	return attendance.ToResponses(records), nil
}

// QueryAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) QueryAll(ctx context.Context, rng *attendance.DateRange) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListAll(ctx, rng)
	if err != nil {
		return nil, err
	}
	return attendance.ToResponses(records), nil
}
