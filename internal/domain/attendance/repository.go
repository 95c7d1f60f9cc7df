package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// open-session lookup and the insert in a clock-in must run inside one
// transaction (see postgresql.WithTransaction); the partial unique index on
// (worker_id, date) for open rows backs the invariant up at the schema level.
type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetOpenByWorkerAndDate returns the worker's open record on the given
	// day, or nil when there is none.
	GetOpenByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*Attendance, error)

	// SetExit closes a session: stores the exit timestamp and the computed
	// hours in one statement.
	SetExit(ctx context.Context, id string, exitTime time.Time, totalHours float64) error

	// UpdateTimes overwrites both timestamps and the recomputed hours, used
	// by administrative corrections.
	UpdateTimes(ctx context.Context, id string, entryTime, exitTime *time.Time, totalHours float64) error

	// ListByWorker returns a worker's records, most recent date first.
	ListByWorker(ctx context.Context, workerID string, rng *DateRange) ([]Attendance, error)

	// ListAll returns all records joined with worker identity, ordered by
	// date descending then worker name ascending.
	ListAll(ctx context.Context, rng *DateRange) ([]Attendance, error)
}
