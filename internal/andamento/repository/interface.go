package repository

import (
	"context"

	"legal-office-management/internal/model"
)

// Repository is the store boundary for andamentos.
type Repository interface {
	// ListByProcesso returns a page of andamentos and the total matching count.
	ListByProcesso(ctx context.Context, opt ListOptions) ([]model.Andamento, int, error)

	// GetOne returns a zero-value Andamento (ID == "") when not found.
	GetOne(ctx context.Context, id string) (model.Andamento, error)

	// UpdateLida returns a zero-value Andamento when the id does not exist.
	UpdateLida(ctx context.Context, opt UpdateLidaOptions) (model.Andamento, error)

	// UpsertMany inserts movements, skipping (processo_oab_id, external_id) pairs already stored.
	UpsertMany(ctx context.Context, opts []UpsertOptions) (int, error)
}
