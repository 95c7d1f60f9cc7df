package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/mobinh8585/attendance-system/internal/domain/attendance"
	"github.com/mobinh8585/attendance-system/internal/domain/worker"
	"github.com/mobinh8585/attendance-system/internal/pkg/database"
	"github.com/mobinh8585/attendance-system/internal/pkg/jalali"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// testInit connects and migrates once per process; tests skip when no
// database is reachable so the suite runs anywhere.
func testInit(t *testing.T) {
	t.Helper()
	if testDB != nil {
		return
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Skip("test database unreachable: " + err.Error())
	}
	require.NoError(t, database.Migrate(dsn))
	testDB = db
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := testDB.Exec(ctx, "TRUNCATE TABLE attendance, workers CASCADE")
	require.NoError(t, err)
}

func createTestWorker(t *testing.T, ctx context.Context, personnelNumber string) worker.Worker {
	t.Helper()
	repo := NewWorkerRepository(testDB)
	w, err := repo.Create(ctx, worker.Worker{
		PersonnelNumber: personnelNumber,
		FullName:        "کارگر آزمایشی " + personnelNumber,
	})
	require.NoError(t, err)
	return w
}

func openSession(t *testing.T, ctx context.Context, workerID string, entry time.Time) attendance.Attendance {
	t.Helper()
	repo := NewAttendanceRepository(testDB)
	day := time.Date(entry.Year(), entry.Month(), entry.Day(), 0, 0, 0, 0, entry.Location())
	rec, err := repo.Create(ctx, attendance.Attendance{
		WorkerID:   workerID,
		EntryTime:  &entry,
		Date:       day,
		JalaliDate: jalali.FormatDate(entry),
	})
	require.NoError(t, err)
	return rec
}

func TestWorkerRepository_DuplicatePersonnelNumber(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	repo := NewWorkerRepository(testDB)
	createTestWorker(t, ctx, "1001")

	_, err := repo.Create(ctx, worker.Worker{PersonnelNumber: "1001", FullName: "دیگری"})
	assert.ErrorIs(t, err, worker.ErrPersonnelNumberExists)
}

func TestWorkerRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	w := createTestWorker(t, ctx, "1001")
	rec := openSession(t, ctx, w.ID, time.Now())

	workerRepo := NewWorkerRepository(testDB)
	require.NoError(t, workerRepo.Delete(ctx, w.ID))

	attendanceRepo := NewAttendanceRepository(testDB)
	_, err := attendanceRepo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, workerRepo.Delete(ctx, w.ID))
}

func TestAttendanceRepository_OpenSessionUnique(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	w := createTestWorker(t, ctx, "1001")
	now := time.Now()
	openSession(t, ctx, w.ID, now)

	// The partial unique index rejects a second open row for the same day
	// even without the service-level pre-check.
	repo := NewAttendanceRepository(testDB)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	entry := now.Add(time.Minute)
	_, err := repo.Create(ctx, attendance.Attendance{
		WorkerID:   w.ID,
		EntryTime:  &entry,
		Date:       day,
		JalaliDate: jalali.FormatDate(entry),
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceRepository_SetExitFreesTheDay(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	w := createTestWorker(t, ctx, "1001")
	now := time.Now()
	rec := openSession(t, ctx, w.ID, now)

	repo := NewAttendanceRepository(testDB)
	require.NoError(t, repo.SetExit(ctx, rec.ID, now.Add(8*time.Hour), 8))

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	open, err := repo.GetOpenByWorkerAndDate(ctx, w.ID, day)
	require.NoError(t, err)
	assert.Nil(t, open)

	// A closed row no longer collides with a fresh session.
	openSession(t, ctx, w.ID, now.Add(9*time.Hour))
}

func TestTxManager_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	w := createTestWorker(t, ctx, "1001")
	tm := NewTxManager(testDB)
	repo := NewAttendanceRepository(testDB)

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	err := tm.WithinTransaction(ctx, func(txCtx context.Context) error {
		entry := now
		_, err := repo.Create(txCtx, attendance.Attendance{
			WorkerID:   w.ID,
			EntryTime:  &entry,
			Date:       day,
			JalaliDate: jalali.FormatDate(entry),
		})
		require.NoError(t, err)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	// The insert rolled back with the transaction.
	open, err := repo.GetOpenByWorkerAndDate(ctx, w.ID, day)
	require.NoError(t, err)
	assert.Nil(t, open)
}
