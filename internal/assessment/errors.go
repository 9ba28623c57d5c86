package assessment

import "errors"

var (
	// ErrInvalidState is returned when an operation is not allowed in the session's current phase
	ErrInvalidState = errors.New("assessment: operation not allowed in current phase")
	// ErrUnknownOption is returned when an option does not belong to the current question
	ErrUnknownOption = errors.New("assessment: option is not part of the current question")
	// ErrInvalidBank wraps every question bank validation failure
	ErrInvalidBank = errors.New("assessment: invalid question bank")
	// ErrInvalidSnapshot is returned when a snapshot cannot be restored against a bank
	ErrInvalidSnapshot = errors.New("assessment: invalid session snapshot")
)
