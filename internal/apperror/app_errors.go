package apperror

import "errors"

var (
	ErrInvalidEntry      = errors.New("entry is not a valid input")
	ErrCellOccupied      = errors.New("cell has already been used")
	ErrInternalDuplicate = errors.New("fatal logic error, cell was claimed twice")
	ErrNoSuchPlayer      = errors.New("no such player")
	ErrInputClosed       = errors.New("input closed")

	// ErrTerminated signals that a state machine has nothing further to do.
	ErrTerminated = errors.New("game over")
)
