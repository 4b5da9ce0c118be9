package usecase

import (
	"context"
	"strings"

	"legal-office-management/internal/andamento"
	repo "legal-office-management/internal/andamento/repository"
	"legal-office-management/internal/model"
)

// List returns a page of andamentos of a process, each evaluated against input.Now.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input andamento.ListInput) (andamento.ListOutput, error) {
	if strings.TrimSpace(input.ProcessoOABID) == "" {
		return andamento.ListOutput{}, andamento.ErrProcessoRequired
	}

	limit := pageLimit(input.Limit)
	offset := max(input.Offset, 0)

	rows, total, err := uc.repo.ListByProcesso(ctx, repo.ListOptions{
		ProcessoOABID: input.ProcessoOABID,
		OnlyUnread:    input.OnlyUnread,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListByProcesso: user=%s processo=%s: %v", sc.UserID, input.ProcessoOABID, err)
		return andamento.ListOutput{}, err
	}

	now := uc.now(input.Now)
	items := make([]andamento.Item, 0, len(rows))
	for _, a := range rows {
		items = append(items, uc.evaluate(a, now))
	}

	return andamento.ListOutput{
		Items:    items,
		Total:    total,
		Urgentes: uc.parser.CountUrgentes(rows, now),
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// CountUrgent counts the urgent intimações over every unread andamento of the process.
func (uc *implUseCase) CountUrgent(ctx context.Context, sc model.Scope, input andamento.CountUrgentInput) (int, error) {
	if strings.TrimSpace(input.ProcessoOABID) == "" {
		return 0, andamento.ErrProcessoRequired
	}

	rows, _, err := uc.repo.ListByProcesso(ctx, repo.ListOptions{
		ProcessoOABID: input.ProcessoOABID,
		OnlyUnread:    true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CountUrgent ListByProcesso: user=%s processo=%s: %v", sc.UserID, input.ProcessoOABID, err)
		return 0, err
	}

	return uc.parser.CountUrgentes(rows, uc.now(input.Now)), nil
}
