package attendance

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/mobinh8585/attendance-system/internal/domain/attendance"
	"github.com/mobinh8585/attendance-system/internal/domain/worker"
	"github.com/mobinh8585/attendance-system/internal/pkg/jalali"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransactor runs the callback directly; the in-memory repositories have
// no transactions to manage.
type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func newFakeWorkerRepo(workers ...worker.Worker) *fakeWorkerRepo {
	repo := &fakeWorkerRepo{workers: make(map[string]worker.Worker)}
	for _, w := range workers {
		repo.workers[w.ID] = w
	}
	return repo
}

func (f *fakeWorkerRepo) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	f.workers[newWorker.ID] = newWorker
	return newWorker, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) GetByPersonnelNumber(ctx context.Context, personnelNumber string) (worker.Worker, error) {
	for _, w := range f.workers {
		if w.PersonnelNumber == personnelNumber {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) ExistsByPersonnelNumber(ctx context.Context, personnelNumber string) (bool, error) {
	_, err := f.GetByPersonnelNumber(ctx, personnelNumber)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) {
	workers := make([]worker.Worker, 0, len(f.workers))
	for _, w := range f.workers {
		workers = append(workers, w)
	}
	sort.Slice(workers, func(i, j int) bool { return workers[i].FullName < workers[j].FullName })
	return workers, nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, id string, req worker.UpdateWorkerRequest) error {
	w, ok := f.workers[id]
	if !ok {
		return worker.ErrWorkerNotFound
	}
	if req.FullName != nil {
		w.FullName = *req.FullName
	}
	if req.Phone != nil {
		w.Phone = req.Phone
	}
	f.workers[id] = w
	return nil
}

func (f *fakeWorkerRepo) Delete(ctx context.Context, id string) error {
	delete(f.workers, id)
	return nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.WorkerID == record.WorkerID && r.Date.Equal(record.Date) && r.ExitTime == nil {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
	}
	f.seq++
	record.ID = fmt.Sprintf("rec-%d", f.seq)
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeAttendanceRepo) GetOpenByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Attendance, error) {
	for _, r := range f.records {
		if r.WorkerID == workerID && r.Date.Equal(date) && r.ExitTime == nil {
			open := r
			return &open, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetExit(ctx context.Context, id string, exitTime time.Time, totalHours float64) error {
	r, ok := f.records[id]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	r.ExitTime = &exitTime
	r.TotalHours = totalHours
	f.records[id] = r
	return nil
}

func (f *fakeAttendanceRepo) UpdateTimes(ctx context.Context, id string, entryTime, exitTime *time.Time, totalHours float64) error {
	r, ok := f.records[id]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	r.EntryTime = entryTime
	r.ExitTime = exitTime
	r.TotalHours = totalHours
	f.records[id] = r
	return nil
}

func (f *fakeAttendanceRepo) ListByWorker(ctx context.Context, workerID string, rng *attendance.DateRange) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for _, r := range f.records {
		if r.WorkerID != workerID {
			continue
		}
		if rng != nil && (r.Date.Before(rng.Start) || !r.Date.Before(rng.End)) {
			continue
		}
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	return records, nil
}

func (f *fakeAttendanceRepo) ListAll(ctx context.Context, rng *attendance.DateRange) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for _, r := range f.records {
		if rng != nil && (r.Date.Before(rng.Start) || !r.Date.Before(rng.End)) {
			continue
		}
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	return records, nil
}

func newTestService(attendanceRepo *fakeAttendanceRepo, workerRepo *fakeWorkerRepo, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		tx:                   fakeTransactor{},
		AttendanceRepository: attendanceRepo,
		WorkerRepository:     workerRepo,
		now:                  func() time.Time { return now },
	}
}

func testWorker() worker.Worker {
	return worker.Worker{ID: "w-1", PersonnelNumber: "1001", FullName: "علی رضایی"}
}

func TestAttendanceService_ClockIn_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 20, 8, 30, 0, 0, time.Local)
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeWorkerRepo(testWorker()), now)

	result, err := svc.ClockIn(ctx, "w-1")

	require.NoError(t, err)
	assert.Equal(t, "w-1", result.WorkerID)
	assert.Equal(t, "2024-03-20", result.Date)
	assert.Equal(t, jalali.FormatDate(now), result.JalaliDate)
	require.NotNil(t, result.EntryTime)
	assert.Nil(t, result.ExitTime)
	assert.Zero(t, result.TotalHours)
}

func TestAttendanceService_ClockIn_AlreadyClockedIn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 20, 8, 30, 0, 0, time.Local)
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeWorkerRepo(testWorker()), now)

	_, err := svc.ClockIn(ctx, "w-1")
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, "w-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceService_ClockIn_UnknownWorker(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeWorkerRepo(), time.Now())

	_, err := svc.ClockIn(ctx, "missing")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestAttendanceService_ClockIn_AfterClockOutSameDay(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 20, 8, 0, 0, 0, time.Local)
	repo := newFakeAttendanceRepo()
	workerRepo := newFakeWorkerRepo(testWorker())

	svc := newTestService(repo, workerRepo, now)
	_, err := svc.ClockIn(ctx, "w-1")
	require.NoError(t, err)

	svc = newTestService(repo, workerRepo, now.Add(4*time.Hour))
	_, err = svc.ClockOut(ctx, "w-1")
	require.NoError(t, err)

	// A closed session no longer blocks a fresh clock-in on the same day.
	svc = newTestService(repo, workerRepo, now.Add(6*time.Hour))
	result, err := svc.ClockIn(ctx, "w-1")
	require.NoError(t, err)
	assert.Nil(t, result.ExitTime)
}

func TestAttendanceService_ClockOut_Success(t *testing.T) {
	ctx := context.Background()
	entry := time.Date(2024, 3, 20, 8, 30, 0, 0, time.Local)
	repo := newFakeAttendanceRepo()
	workerRepo := newFakeWorkerRepo(testWorker())

	svc := newTestService(repo, workerRepo, entry)
	_, err := svc.ClockIn(ctx, "w-1")
	require.NoError(t, err)

	svc = newTestService(repo, workerRepo, entry.Add(8*time.Hour+30*time.Minute))
	result, err := svc.ClockOut(ctx, "w-1")

	require.NoError(t, err)
	require.NotNil(t, result.ExitTime)
	assert.InDelta(t, 8.5, result.TotalHours, 0.0001)
}

func TestAttendanceService_ClockOut_NotClockedIn(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeWorkerRepo(testWorker()), time.Now())

	_, err := svc.ClockOut(ctx, "w-1")
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)

	// A failed clock-out never creates or mutates a record.
	assert.Empty(t, repo.records)
}

func TestAttendanceService_CorrectTime_RecomputesHours(t *testing.T) {
	ctx := context.Background()
	entry := time.Date(2024, 3, 20, 9, 0, 0, 0, time.Local)
	repo := newFakeAttendanceRepo()
	workerRepo := newFakeWorkerRepo(testWorker())

	svc := newTestService(repo, workerRepo, entry)
	created, err := svc.ClockIn(ctx, "w-1")
	require.NoError(t, err)

	svc = newTestService(repo, workerRepo, entry.Add(8*time.Hour))
	_, err = svc.ClockOut(ctx, "w-1")
	require.NoError(t, err)

	// Pull the entry back an hour; the stored hours must follow.
	result, err := svc.CorrectTime(ctx, attendance.CorrectTimeRequest{
		RecordID: created.ID,
		Field:    attendance.FieldEntry,
		NewTime:  entry.Add(-time.Hour),
	})

	require.NoError(t, err)
	assert.InDelta(t, 9.0, result.TotalHours, 0.0001)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, stored.TotalHours, 0.0001)
}

func TestAttendanceService_CorrectTime_ClampsInvalidInterval(t *testing.T) {
	ctx := context.Background()
	entry := time.Date(2024, 3, 20, 9, 0, 0, 0, time.Local)
	repo := newFakeAttendanceRepo()
	workerRepo := newFakeWorkerRepo(testWorker())

	svc := newTestService(repo, workerRepo, entry)
	created, err := svc.ClockIn(ctx, "w-1")
	require.NoError(t, err)

	svc = newTestService(repo, workerRepo, entry.Add(8*time.Hour))
	_, err = svc.ClockOut(ctx, "w-1")
	require.NoError(t, err)

	// Exit before entry clamps to zero rather than going negative.
	result, err := svc.CorrectTime(ctx, attendance.CorrectTimeRequest{
		RecordID: created.ID,
		Field:    attendance.FieldExit,
		NewTime:  entry.Add(-2 * time.Hour),
	})

	require.NoError(t, err)
	assert.Zero(t, result.TotalHours)
}

func TestAttendanceService_CorrectTime_UnknownRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeWorkerRepo(), time.Now())

	_, err := svc.CorrectTime(ctx, attendance.CorrectTimeRequest{
		RecordID: "missing",
		Field:    attendance.FieldExit,
		NewTime:  time.Now(),
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestAttendanceService_CorrectTime_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), newFakeWorkerRepo(), time.Now())

	_, err := svc.CorrectTime(ctx, attendance.CorrectTimeRequest{
		RecordID: "rec-1",
		Field:    "lunch",
		NewTime:  time.Now(),
	})
	assert.Error(t, err)
}

func TestAttendanceService_QueryWorker_RangeAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	workerRepo := newFakeWorkerRepo(testWorker())

	days := []time.Time{
		time.Date(2024, 3, 20, 8, 0, 0, 0, time.Local),
		time.Date(2024, 3, 21, 8, 0, 0, 0, time.Local),
		time.Date(2024, 3, 25, 8, 0, 0, 0, time.Local),
	}
	for _, day := range days {
		svc := newTestService(repo, workerRepo, day)
		_, err := svc.ClockIn(ctx, "w-1")
		require.NoError(t, err)
		svc = newTestService(repo, workerRepo, day.Add(8*time.Hour))
		_, err = svc.ClockOut(ctx, "w-1")
		require.NoError(t, err)
	}

	svc := newTestService(repo, workerRepo, time.Now())
	result, err := svc.QueryWorker(ctx, "w-1", &attendance.DateRange{
		Start: time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local),
		End:   time.Date(2024, 3, 22, 0, 0, 0, 0, time.Local),
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "2024-03-21", result[0].Date)
	assert.Equal(t, "2024-03-20", result[1].Date)
}
