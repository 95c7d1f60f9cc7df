package attendance

import "context"

// AttendanceService defines business logic for the record lifecycle.
type AttendanceService interface {
	// ClockIn opens today's session for the worker. Fails with
	// ErrAlreadyClockedIn when an open session already exists for today.
	ClockIn(ctx context.Context, workerID string) (AttendanceResponse, error)

	// ClockOut closes today's open session and computes the total hours.
	// Fails with ErrNotClockedIn when there is no open session today.
	ClockOut(ctx context.Context, workerID string) (AttendanceResponse, error)

	// CorrectTime overwrites one timestamp of an existing record and always
	// recomputes the stored hours. Administrative override; the only
	// precondition is that the record exists.
	CorrectTime(ctx context.Context, req CorrectTimeRequest) (AttendanceResponse, error)

	// QueryWorker returns one worker's records, most recent first.
	QueryWorker(ctx context.Context, workerID string, rng *DateRange) ([]AttendanceResponse, error)

	// QueryAll returns all records with worker identity attached.
	QueryAll(ctx context.Context, rng *DateRange) ([]AttendanceResponse, error)
}
