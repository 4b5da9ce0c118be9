package prazo

import (
	"context"

	"legal-office-management/internal/andamento"
	"legal-office-management/internal/model"
	"legal-office-management/pkg/gcalendar"
)

// UseCase defines the business logic interface for deadlines.
type UseCase interface {
	// Create inserts a deadline, then mirrors it to the agenda and publishes
	// prazo.created. Agenda and publish failures are logged only.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Prazo, error)

	// CreateFromAndamento derives title, description and date from a parsed intimação ("Criar Prazo").
	CreateFromAndamento(ctx context.Context, sc model.Scope, input FromAndamentoInput) (model.Prazo, error)

	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Delete removes the deadline and its agenda event.
	Delete(ctx context.Context, sc model.Scope, id string) error
}

// Calendar mirrors deadlines to the office agenda. *gcalendar.Client satisfies it.
type Calendar interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Andamentos reads evaluated docket entries.
type Andamentos interface {
	Detail(ctx context.Context, sc model.Scope, input andamento.DetailInput) (andamento.Item, error)
}
