package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/andamento/repository"
	"legal-office-management/internal/model"
)

// now returns the simulated today when set, else the wall clock.
func (uc *implUseCase) now(t time.Time) time.Time {
	if t.IsZero() {
		return uc.clock()
	}
	return t
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return andamento.ErrInvalidID
	}
	return nil
}

func pageLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}

func (uc *implUseCase) evaluate(a model.Andamento, now time.Time) andamento.Item {
	return andamento.Item{
		Andamento: a,
		Intimacao: uc.parser.Evaluate(a.Descricao, now),
	}
}

// toUpsertOptions converts movements to store rows. Movements with neither
// text nor id carry nothing to track and are skipped.
func toUpsertOptions(processoOABID string, movements []model.Movement) []repository.UpsertOptions {
	opts := make([]repository.UpsertOptions, 0, len(movements))
	for _, m := range movements {
		text := strings.TrimSpace(m.Texto)
		if text == "" && m.ExternalID == "" {
			continue
		}
		var descricao *string
		if text != "" {
			descricao = &text
		}
		opts = append(opts, repository.UpsertOptions{
			ProcessoOABID:    processoOABID,
			ExternalID:       m.ExternalID,
			DataMovimentacao: m.Data,
			Tipo:             m.Tipo,
			Descricao:        descricao,
			DadosCompletos:   m.Raw,
		})
	}
	return opts
}
