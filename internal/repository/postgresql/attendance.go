package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mobinh8585/attendance-system/internal/domain/attendance"
	"github.com/mobinh8585/attendance-system/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. A 23505 from the
// partial unique index on open sessions means a concurrent clock-in won the
// race; it is reported as the same business error the pre-check raises.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()

	query := `
		INSERT INTO attendance (id, worker_id, entry_time, exit_time, date, jalali_date, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		record.ID,
		record.WorkerID,
		record.EntryTime,
		record.ExitTime,
		record.Date,
		record.JalaliDate,
		record.TotalHours,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, entry_time, exit_time, date, jalali_date, total_hours
		FROM attendance
		WHERE id = $1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.WorkerID, &a.EntryTime, &a.ExitTime, &a.Date, &a.JalaliDate, &a.TotalHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a, nil
}

// GetOpenByWorkerAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, entry_time, exit_time, date, jalali_date, total_hours
		FROM attendance
		WHERE worker_id = $1
		  AND date = $2
		  AND exit_time IS NULL
		ORDER BY entry_time DESC
		LIMIT 1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, workerID, date).Scan(
		&a.ID, &a.WorkerID, &a.EntryTime, &a.ExitTime, &a.Date, &a.JalaliDate, &a.TotalHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no open session
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &a, nil
}

// SetExit implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetExit(ctx context.Context, id string, exitTime time.Time, totalHours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET exit_time = $1, total_hours = $2
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, exitTime, totalHours, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to set exit time: %w", err)
	}

	return nil
}

// UpdateTimes implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateTimes(ctx context.Context, id string, entryTime, exitTime *time.Time, totalHours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET entry_time = $1, exit_time = $2, total_hours = $3
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, entryTime, exitTime, totalHours, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance times: %w", err)
	}

	return nil
}

// ListByWorker implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByWorker(ctx context.Context, workerID string, rng *attendance.DateRange) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, entry_time, exit_time, date, jalali_date, total_hours
		FROM attendance
		WHERE worker_id = $1
	`
	args := []interface{}{workerID}

	if rng != nil {
		query += " AND date >= $2 AND date < $3"
		args = append(args, rng.Start, rng.End)
	}
	query += " ORDER BY date DESC, entry_time DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query worker attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.EntryTime, &a.ExitTime, &a.Date, &a.JalaliDate, &a.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// ListAll implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListAll(ctx context.Context, rng *attendance.DateRange) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.worker_id, a.entry_time, a.exit_time, a.date, a.jalali_date, a.total_hours,
		       w.full_name, w.personal_number
		FROM attendance a
		JOIN workers w ON w.id = a.worker_id
	`
	var args []interface{}

	if rng != nil {
		query += " WHERE a.date >= $1 AND a.date < $2"
		args = append(args, rng.Start, rng.End)
	}
	query += " ORDER BY a.date DESC, w.full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.WorkerID, &a.EntryTime, &a.ExitTime, &a.Date, &a.JalaliDate, &a.TotalHours,
			&a.WorkerName, &a.PersonnelNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
