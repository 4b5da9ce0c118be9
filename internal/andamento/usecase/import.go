package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/model"
	"legal-office-management/pkg/cnj"
	"legal-office-management/pkg/legaldata"
)

// Import fetches the lawsuit movements from the provider and stores the new ones.
func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, input andamento.ImportInput) (andamento.ImportOutput, error) {
	if strings.TrimSpace(input.ProcessoOABID) == "" {
		return andamento.ImportOutput{}, andamento.ErrProcessoRequired
	}

	number, err := cnj.Parse(input.NumeroCNJ)
	if err != nil {
		return andamento.ImportOutput{}, fmt.Errorf("%w: %v", andamento.ErrInvalidCNJ, err)
	}

	if uc.provider == nil {
		return andamento.ImportOutput{}, andamento.ErrProviderUnavailable
	}

	movements, err := uc.provider.GetMovements(ctx, number.Digits())
	if err != nil {
		if errors.Is(err, legaldata.ErrNotFound) {
			return andamento.ImportOutput{}, andamento.ErrLawsuitNotFound
		}
		uc.l.Errorf(ctx, "uc.Import GetMovements: cnj=%s: %v", number, err)
		return andamento.ImportOutput{}, fmt.Errorf("failed to fetch movements: %w", err)
	}

	converted := make([]model.Movement, 0, len(movements))
	for _, m := range movements {
		converted = append(converted, model.Movement{
			ExternalID: m.ID,
			Data:       m.Date,
			Tipo:       m.Type,
			Texto:      m.Text,
			Raw:        m.Raw,
		})
	}

	out, err := uc.Ingest(ctx, sc, andamento.IngestInput{
		ProcessoOABID: input.ProcessoOABID,
		Source:        model.SourceImport,
		Movements:     converted,
	})
	if err != nil && !errors.Is(err, andamento.ErrNoMovements) {
		return andamento.ImportOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Import: user=%s cnj=%s fetched=%d inserted=%d", sc.UserID, number, len(movements), out.Inserted)
	return andamento.ImportOutput{
		NumeroCNJ: number.String(),
		Fetched:   len(movements),
		Inserted:  out.Inserted,
	}, nil
}
