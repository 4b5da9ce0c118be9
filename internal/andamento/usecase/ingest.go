package usecase

import (
	"context"
	"strings"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/model"
)

// Ingest stores pushed movements. Already known (processo, external id) pairs are skipped.
func (uc *implUseCase) Ingest(ctx context.Context, sc model.Scope, input andamento.IngestInput) (andamento.IngestOutput, error) {
	if strings.TrimSpace(input.ProcessoOABID) == "" {
		return andamento.IngestOutput{}, andamento.ErrProcessoRequired
	}

	opts := toUpsertOptions(input.ProcessoOABID, input.Movements)
	if len(opts) == 0 {
		return andamento.IngestOutput{Received: len(input.Movements)}, andamento.ErrNoMovements
	}

	inserted, err := uc.repo.UpsertMany(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ingest UpsertMany: source=%s processo=%s: %v", input.Source, input.ProcessoOABID, err)
		return andamento.IngestOutput{Received: len(input.Movements), Inserted: inserted}, err
	}

	uc.l.Infof(ctx, "uc.Ingest: source=%s processo=%s received=%d inserted=%d",
		input.Source, input.ProcessoOABID, len(input.Movements), inserted)
	return andamento.IngestOutput{Received: len(input.Movements), Inserted: inserted}, nil
}
