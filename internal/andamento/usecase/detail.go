package usecase

import (
	"context"

	"legal-office-management/internal/andamento"
	repo "legal-office-management/internal/andamento/repository"
	"legal-office-management/internal/model"
)

// Detail retrieves one andamento with its evaluation. Returns ErrNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, input andamento.DetailInput) (andamento.Item, error) {
	if err := validateID(input.ID); err != nil {
		return andamento.Item{}, err
	}

	a, err := uc.repo.GetOne(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOne: %v", err)
		return andamento.Item{}, err
	}
	if a.ID == "" {
		return andamento.Item{}, andamento.ErrNotFound
	}

	return uc.evaluate(a, uc.now(input.Now)), nil
}

// MarkRead flips the lida flag. Returns ErrNotFound when missing.
func (uc *implUseCase) MarkRead(ctx context.Context, sc model.Scope, input andamento.MarkReadInput) (model.Andamento, error) {
	if err := validateID(input.ID); err != nil {
		return model.Andamento{}, err
	}

	a, err := uc.repo.UpdateLida(ctx, repo.UpdateLidaOptions{ID: input.ID, Lida: input.Lida})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkRead UpdateLida: %v", err)
		return model.Andamento{}, err
	}
	if a.ID == "" {
		return model.Andamento{}, andamento.ErrNotFound
	}

	uc.l.Infof(ctx, "uc.MarkRead: user=%s andamento=%s lida=%t", sc.UserID, a.ID, a.Lida)
	return a, nil
}
