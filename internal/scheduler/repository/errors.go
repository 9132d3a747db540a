package repository

import "errors"

// Repository-level errors. Implementations log the underlying cause and
// return these so use cases never branch on driver errors.
var (
	ErrFailedToList   = errors.New("failed to list queue tasks")
	ErrFailedToUpdate = errors.New("failed to update queue task")
	ErrFailedToInsert = errors.New("failed to insert queue task")
)
