package model

import (
	"encoding/json"
	"time"
)

// Andamento is one docket entry (movement) of a lawsuit tracked by the office.
// Intimações are andamentos whose Descricao carries the deadline markers.
type Andamento struct {
	ID               string          `json:"id"`
	ProcessoOABID    string          `json:"processo_oab_id"`
	ExternalID       string          `json:"external_id,omitempty"` // provider movement id, unique per process
	DataMovimentacao time.Time       `json:"data_movimentacao"`
	Tipo             string          `json:"tipo,omitempty"`
	Descricao        *string         `json:"descricao"`
	Lida             bool            `json:"lida"`
	DadosCompletos   json.RawMessage `json:"dados_completos,omitempty"` // opaque provider payload
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// DescricaoText returns the description or "" when nil.
func (a Andamento) DescricaoText() string {
	if a.Descricao == nil {
		return ""
	}
	return *a.Descricao
}
