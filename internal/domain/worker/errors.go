package worker

import "errors"

var (
	ErrWorkerNotFound         = errors.New("worker not found")
	ErrPersonnelNumberExists  = errors.New("personnel number already registered")
	ErrInvalidPersonnelNumber = errors.New("invalid personnel number")
	ErrInvalidPhoneNumber     = errors.New("invalid phone number")
	ErrNothingToUpdate        = errors.New("no updatable fields provided")
)
