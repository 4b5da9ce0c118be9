package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/intimacao"
	"legal-office-management/internal/model"
	"legal-office-management/internal/prazo"
	"legal-office-management/internal/prazo/repository"
)

// Create inserts a deadline, mirrors it to the agenda and publishes prazo.created.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input prazo.CreateInput) (model.Prazo, error) {
	return uc.create(ctx, sc, input, nil)
}

func (uc *implUseCase) create(ctx context.Context, sc model.Scope, input prazo.CreateInput, andamentoID *string) (model.Prazo, error) {
	input.ProjectID = strings.TrimSpace(input.ProjectID)
	input.Title = strings.TrimSpace(input.Title)

	switch {
	case input.ProjectID == "":
		return model.Prazo{}, prazo.ErrProjectRequired
	case input.Title == "":
		return model.Prazo{}, prazo.ErrTitleRequired
	case input.Date.IsZero():
		return model.Prazo{}, prazo.ErrDateRequired
	}

	p, err := uc.repo.Create(ctx, repository.CreateOptions{
		ProjectID:     input.ProjectID,
		ProcessoOABID: input.ProcessoOABID,
		AndamentoID:   andamentoID,
		Title:         input.Title,
		Description:   input.Description,
		Date:          uc.civilDate(input.Date),
		CreatedBy:     sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.Create: %v", err)
		return model.Prazo{}, err
	}

	if eventID := uc.trySyncCalendar(ctx, p); eventID != "" {
		p.CalendarEventID = eventID
	}
	uc.tryPublishCreated(ctx, p)

	uc.l.Infof(ctx, "uc.Create: user=%s prazo=%s project=%s date=%s", sc.UserID, p.ID, p.ProjectID, p.Date.Format("2006-01-02"))
	return p, nil
}

// CreateFromAndamento pre-fills a deadline from the parsed intimação of an andamento.
// The date is dataFinal, or today plus prazoDias business days when only the duration is known.
func (uc *implUseCase) CreateFromAndamento(ctx context.Context, sc model.Scope, input prazo.FromAndamentoInput) (model.Prazo, error) {
	now := input.Now
	if now.IsZero() {
		now = uc.clock()
	}

	item, err := uc.andamentos.Detail(ctx, sc, andamento.DetailInput{ID: input.AndamentoID, Now: now})
	if err != nil {
		if errors.Is(err, andamento.ErrNotFound) || errors.Is(err, andamento.ErrInvalidID) {
			return model.Prazo{}, prazo.ErrAndamentoNotFound
		}
		uc.l.Errorf(ctx, "uc.CreateFromAndamento Detail: %v", err)
		return model.Prazo{}, err
	}

	parsed := item.Intimacao.ParsedIntimacao
	if parsed.Status == intimacao.StatusFechado {
		return model.Prazo{}, prazo.ErrIntimacaoClosed
	}

	date := parsed.DataFinal
	if date == nil && parsed.PrazoDias != nil {
		d := uc.dateMath.AddBusinessDays(now, *parsed.PrazoDias)
		date = &d
	}
	if date == nil {
		return model.Prazo{}, prazo.ErrNoDeadline
	}

	a := item.Andamento
	title := input.Title
	if strings.TrimSpace(title) == "" {
		title = deriveTitle(a.Tipo, a.DescricaoText())
	}

	processoOABID := a.ProcessoOABID
	andamentoID := a.ID
	return uc.create(ctx, sc, prazo.CreateInput{
		ProjectID:     input.ProjectID,
		ProcessoOABID: &processoOABID,
		Title:         title,
		Description:   a.DescricaoText(),
		Date:          *date,
	}, &andamentoID)
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return prazo.ErrInvalidID
	}
	return nil
}
