package repository

import (
	"encoding/json"
	"time"
)

// ListOptions holds the parameters for listing andamentos of a process.
type ListOptions struct {
	ProcessoOABID string
	OnlyUnread    bool
	Limit         int // 0 means no limit
	Offset        int
}

// UpdateLidaOptions holds the parameters for flipping the read flag.
type UpdateLidaOptions struct {
	ID   string
	Lida bool
}

// UpsertOptions is one movement to store.
type UpsertOptions struct {
	ProcessoOABID    string
	ExternalID       string
	DataMovimentacao time.Time
	Tipo             string
	Descricao        *string
	DadosCompletos   json.RawMessage
}
