package model

import (
	"encoding/json"
	"time"
)

// MovementSource identifies where a provider movement came from.
type MovementSource string

const (
	SourceLegalData MovementSource = "legaldata" // provider push (webhook)
	SourceImport    MovementSource = "import"    // pulled on demand
	SourceManual    MovementSource = "manual"
)

// Movement is a docket movement as reported by the judicial-data provider.
type Movement struct {
	ExternalID string          `json:"id"`
	Data       time.Time       `json:"data"`
	Tipo       string          `json:"tipo,omitempty"`
	Texto      string          `json:"texto"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

// MovementBatch is a set of movements for one lawsuit, as pushed by the provider
// or relayed through the andamentos.sync topic.
type MovementBatch struct {
	Source        MovementSource `json:"source"`
	ProcessoOABID string         `json:"processo_oab_id,omitempty"`
	NumeroCNJ     string         `json:"numero_cnj"`
	Movements     []Movement     `json:"movements"`
	ReceivedAt    time.Time      `json:"received_at"`
}
