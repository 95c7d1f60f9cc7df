package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mobinh8585/attendance-system/internal/domain/worker"
	"github.com/mobinh8585/attendance-system/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

// Create implements worker.WorkerRepository.
func (r *workerRepository) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	newWorker.ID = uuid.NewString()

	query := `
		INSERT INTO workers (id, personal_number, full_name, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newWorker.ID,
		newWorker.PersonnelNumber,
		newWorker.FullName,
		newWorker.Phone,
	).Scan(&newWorker.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrPersonnelNumberExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return newWorker, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personal_number, full_name, phone, created_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(&w.ID, &w.PersonnelNumber, &w.FullName, &w.Phone, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by id: %w", err)
	}

	return w, nil
}

// GetByPersonnelNumber implements worker.WorkerRepository.
func (r *workerRepository) GetByPersonnelNumber(ctx context.Context, personnelNumber string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personal_number, full_name, phone, created_at
		FROM workers
		WHERE personal_number = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, personnelNumber).Scan(&w.ID, &w.PersonnelNumber, &w.FullName, &w.Phone, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by personnel number: %w", err)
	}

	return w, nil
}

// ExistsByPersonnelNumber implements worker.WorkerRepository.
func (r *workerRepository) ExistsByPersonnelNumber(ctx context.Context, personnelNumber string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM workers WHERE personal_number = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, personnelNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check personnel number: %w", err)
	}

	return exists, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personal_number, full_name, phone, created_at
		FROM workers
		ORDER BY full_name ASC, personal_number ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.ID, &w.PersonnelNumber, &w.FullName, &w.Phone, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

// Update implements worker.WorkerRepository. Only full name and phone are
// mutable; the personnel number never changes after registration.
func (r *workerRepository) Update(ctx context.Context, id string, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	argIdx := 1

	if req.FullName != nil {
		updates = append(updates, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Phone != nil {
		updates = append(updates, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}

	if len(updates) == 0 {
		return worker.ErrNothingToUpdate
	}

	args = append(args, id)
	query := "UPDATE workers SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.ErrWorkerNotFound
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}

	return nil
}

// Delete implements worker.WorkerRepository. The attendance foreign key is
// ON DELETE CASCADE, so the worker's records go with it. Zero rows affected
// means the id was already gone, which is fine.
func (r *workerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	return nil
}
