package usecase

import (
	"context"

	"legal-office-management/internal/model"
	"legal-office-management/internal/prazo"
)

// Delete removes a deadline. Returns ErrNotFound when missing.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	existing, err := uc.repo.GetOne(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOne: %v", err)
		return err
	}
	if existing.ID == "" {
		return prazo.ErrNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete: %v", err)
		return err
	}

	if existing.CalendarEventID != "" && uc.cfg.Calendar != nil {
		if err := uc.cfg.Calendar.DeleteEvent(ctx, uc.cfg.CalendarID, existing.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.Delete DeleteEvent: prazo=%s event=%s: %v", id, existing.CalendarEventID, err)
		}
	}

	uc.l.Infof(ctx, "uc.Delete: user=%s prazo=%s", sc.UserID, id)
	return nil
}
