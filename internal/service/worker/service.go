package worker

import (
	"context"

	"github.com/mobinh8585/attendance-system/internal/domain/worker"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{WorkerRepository: workerRepo}
}

// Register implements worker.WorkerService. A duplicate personnel number is
// reported before the insert; the unique constraint maps a concurrent insert
// that slips past the check to the same error.
func (s *WorkerServiceImpl) Register(ctx context.Context, req worker.RegisterWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	exists, err := s.WorkerRepository.ExistsByPersonnelNumber(ctx, req.PersonnelNumber)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	if exists {
		return worker.WorkerResponse{}, worker.ErrPersonnelNumberExists
	}

	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		PersonnelNumber: req.PersonnelNumber,
		FullName:        req.FullName,
		Phone:           req.Phone,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.ToResponse(created), nil
}

// Find implements worker.WorkerService.
func (s *WorkerServiceImpl) Find(ctx context.Context, personnelNumber string) (worker.WorkerResponse, error) {
	w, err := s.WorkerRepository.GetByPersonnelNumber(ctx, personnelNumber)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.ToResponse(w), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.WorkerRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.ToResponse(w))
	}
	return responses, nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, id string, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if err := s.WorkerRepository.Update(ctx, id, req); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.ToResponse(updated), nil
}

// Delete implements worker.WorkerService.
func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.WorkerRepository.Delete(ctx, id)
}
