package usecase

import (
	"context"

	"legal-office-management/internal/model"
	"legal-office-management/internal/prazo"
	"legal-office-management/internal/prazo/repository"
)

// List returns deadlines of a project or process ordered by date.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input prazo.ListInput) (prazo.ListOutput, error) {
	if input.ProjectID == "" && input.ProcessoOABID == "" {
		return prazo.ListOutput{}, prazo.ErrFilterRequired
	}
	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return prazo.ListOutput{}, prazo.ErrInvalidRange
	}

	limit := input.Limit
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	offset := max(input.Offset, 0)

	opt := repository.ListOptions{
		ProjectID:     input.ProjectID,
		ProcessoOABID: input.ProcessoOABID,
		Limit:         limit,
		Offset:        offset,
	}
	if input.From != nil {
		from := uc.civilDate(*input.From)
		opt.From = &from
	}
	if input.To != nil {
		to := uc.civilDate(*input.To)
		opt.To = &to
	}

	prazos, total, err := uc.repo.List(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List: user=%s: %v", sc.UserID, err)
		return prazo.ListOutput{}, err
	}

	return prazo.ListOutput{Prazos: prazos, Total: total, Limit: limit, Offset: offset}, nil
}
