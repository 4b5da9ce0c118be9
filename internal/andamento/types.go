package andamento

import (
	"time"

	"legal-office-management/internal/intimacao"
	"legal-office-management/internal/model"
)

// Item is an andamento with its intimação evaluation for the requested day.
type Item struct {
	Andamento model.Andamento
	Intimacao intimacao.Evaluation
}

// --- List ---

type ListInput struct {
	ProcessoOABID string
	OnlyUnread    bool
	Limit         int
	Offset        int
	Now           time.Time // simulated today; zero means time.Now()
}

type ListOutput struct {
	Items    []Item
	Total    int
	Urgentes int // countIntimacoesUrgentes over the returned page
	Limit    int
	Offset   int
}

// --- Detail ---

type DetailInput struct {
	ID  string
	Now time.Time
}

// --- MarkRead ---

type MarkReadInput struct {
	ID   string
	Lida bool
}

// --- CountUrgent ---

type CountUrgentInput struct {
	ProcessoOABID string
	Now           time.Time
}

// --- Import ---

type ImportInput struct {
	ProcessoOABID string
	NumeroCNJ     string
}

type ImportOutput struct {
	NumeroCNJ string // masked NNNNNNN-DD.AAAA.J.TR.OOOO
	Fetched   int
	Inserted  int
}

// --- Ingest ---

type IngestInput struct {
	ProcessoOABID string
	Source        model.MovementSource
	Movements     []model.Movement
}

type IngestOutput struct {
	Received int
	Inserted int
}
