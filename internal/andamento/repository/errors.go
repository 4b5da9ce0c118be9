package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert andamento")
	ErrFailedToGet    = errors.New("failed to get andamento")
	ErrFailedToList   = errors.New("failed to list andamentos")
	ErrFailedToUpdate = errors.New("failed to update andamento")
)
