package appstate

import "errors"

var (
	// ErrInvalidStateTransition is returned when attempting an invalid state transition
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrAlreadyTerminated is returned when attempting to change state after termination
	ErrAlreadyTerminated = errors.New("application already terminated")

	// ErrCheckerAlreadyRegistered is returned when two checkers share a name
	ErrCheckerAlreadyRegistered = errors.New("checker already registered")

	ErrNilChecker = errors.New("checker cannot be nil")
)
