package prazo

import (
	"time"

	"legal-office-management/internal/model"
)

// --- Create ---

type CreateInput struct {
	ProjectID     string
	ProcessoOABID *string
	Title         string
	Description   string
	Date          time.Time // only the civil date is kept
}

// --- CreateFromAndamento ---

// FromAndamentoInput pre-fills a prazo from a parsed intimação.
// Title overrides the derived title when set.
type FromAndamentoInput struct {
	AndamentoID string
	ProjectID   string
	Title       string
	Now         time.Time // simulated today; zero means time.Now()
}

// --- List ---

type ListInput struct {
	ProjectID     string
	ProcessoOABID string
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

type ListOutput struct {
	Prazos []model.Prazo
	Total  int
	Limit  int
	Offset int
}

// CreatedEvent is published on the prazo topic after an insert.
type CreatedEvent struct {
	Type       string      `json:"type"`
	Prazo      model.Prazo `json:"prazo"`
	OccurredAt time.Time   `json:"occurred_at"`
}
