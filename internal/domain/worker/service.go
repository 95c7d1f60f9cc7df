package worker

import "context"

// WorkerService defines business logic for worker registration and upkeep.
type WorkerService interface {
	// Register creates a worker. A duplicate personnel number is a business
	// failure (ErrPersonnelNumberExists), not a storage fault.
	Register(ctx context.Context, req RegisterWorkerRequest) (WorkerResponse, error)

	// Find looks a worker up by personnel number.
	Find(ctx context.Context, personnelNumber string) (WorkerResponse, error)

	List(ctx context.Context) ([]WorkerResponse, error)

	Update(ctx context.Context, id string, req UpdateWorkerRequest) (WorkerResponse, error)

	// Delete removes the worker and all of its attendance records; missing
	// ids are a no-op.
	Delete(ctx context.Context, id string) error
}
