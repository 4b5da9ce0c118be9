package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert prazo")
	ErrFailedToGet    = errors.New("failed to get prazo")
	ErrFailedToList   = errors.New("failed to list prazos")
	ErrFailedToUpdate = errors.New("failed to update prazo")
	ErrFailedToDelete = errors.New("failed to delete prazo")
)
