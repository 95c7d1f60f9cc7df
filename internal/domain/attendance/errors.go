package attendance

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("already clocked in today")
	ErrNotClockedIn     = errors.New("must clock in first")
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidField     = errors.New("correction field must be entry or exit")

	// ErrInvalidInterval is never returned by the store: corrections that
	// produce a non-positive interval are accepted with hours clamped to
	// zero, matching the recording device's historical behavior. Front ends
	// that want to warn the operator can check for the condition themselves.
	ErrInvalidInterval = errors.New("exit time is not after entry time")
)
