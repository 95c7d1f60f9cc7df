package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, newWorker Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	GetByPersonnelNumber(ctx context.Context, personnelNumber string) (Worker, error)
	ExistsByPersonnelNumber(ctx context.Context, personnelNumber string) (bool, error)

	// List returns all workers ordered by full name ascending, personnel
	// number ascending on ties.
	List(ctx context.Context) ([]Worker, error)

	Update(ctx context.Context, id string, req UpdateWorkerRequest) error

	// Delete removes the worker and, via the schema's cascade, every
	// attendance record that references it. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}
