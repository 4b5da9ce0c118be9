package repository

import (
	"context"

	"legal-office-management/internal/model"
)

// Repository is the store boundary for deadlines.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Prazo, error)

	// GetOne returns a zero-value Prazo (ID == "") when not found.
	GetOne(ctx context.Context, id string) (model.Prazo, error)

	List(ctx context.Context, opt ListOptions) ([]model.Prazo, int, error)

	SetCalendarEventID(ctx context.Context, id, eventID string) error

	Delete(ctx context.Context, id string) error
}
