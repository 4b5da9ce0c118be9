package legaldata

import (
	"encoding/json"
	"time"
)

// Movement is one docket movement as returned by the provider.
type Movement struct {
	ID   string          `json:"id"`
	Date time.Time       `json:"data"`
	Type string          `json:"tipo"`
	Text string          `json:"descricao"`
	Raw  json.RawMessage `json:"-"`
}

// Lawsuit is the provider view of a lawsuit and its movements.
type Lawsuit struct {
	NumeroCNJ string     `json:"numero_cnj"`
	Tribunal  string     `json:"tribunal"`
	Classe    string     `json:"classe"`
	Movements []Movement `json:"movimentacoes"`
}

type movementsResponse struct {
	NumeroCNJ     string            `json:"numero_cnj"`
	Tribunal      string            `json:"tribunal"`
	Classe        string            `json:"classe"`
	Movimentacoes []json.RawMessage `json:"movimentacoes"`
}
