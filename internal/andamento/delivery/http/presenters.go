package http

import (
	"time"

	"legal-office-management/internal/andamento"
	intimacaoHTTP "legal-office-management/internal/intimacao/delivery/http"
	"legal-office-management/internal/model"
	"legal-office-management/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	ProcessoOABID string `form:"-"` // populated from URI param
	OnlyUnread    bool   `form:"only_unread"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
	Hoje          string `form:"hoje"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput(now time.Time) andamento.ListInput {
	return andamento.ListInput{
		ProcessoOABID: r.ProcessoOABID,
		OnlyUnread:    r.OnlyUnread,
		Limit:         r.Limit,
		Offset:        r.Offset,
		Now:           now,
	}
}

// ---

type markReadReq struct {
	ID   string `json:"-"`
	Lida *bool  `json:"lida" binding:"required"`
}

func (r markReadReq) validate() error { return nil }

func (r markReadReq) toInput() andamento.MarkReadInput {
	return andamento.MarkReadInput{ID: r.ID, Lida: *r.Lida}
}

// ---

type importReq struct {
	ProcessoOABID string `json:"-"`
	NumeroCNJ     string `json:"numero_cnj" binding:"required"`
}

func (r importReq) validate() error { return nil }

func (r importReq) toInput() andamento.ImportInput {
	return andamento.ImportInput{ProcessoOABID: r.ProcessoOABID, NumeroCNJ: r.NumeroCNJ}
}

// --- Response DTOs ---

type andamentoResp struct {
	ID               string            `json:"id"`
	ProcessoOABID    string            `json:"processo_oab_id"`
	ExternalID       string            `json:"external_id,omitempty"`
	DataMovimentacao response.DateTime `json:"data_movimentacao"`
	Tipo             string            `json:"tipo,omitempty"`
	Descricao        *string           `json:"descricao"`
	Lida             bool              `json:"lida"`
	CreatedAt        response.DateTime `json:"created_at"`
	UpdatedAt        response.DateTime `json:"updated_at"`
}

func newAndamentoResp(a model.Andamento) andamentoResp {
	return andamentoResp{
		ID:               a.ID,
		ProcessoOABID:    a.ProcessoOABID,
		ExternalID:       a.ExternalID,
		DataMovimentacao: response.DateTime(a.DataMovimentacao),
		Tipo:             a.Tipo,
		Descricao:        a.Descricao,
		Lida:             a.Lida,
		CreatedAt:        response.DateTime(a.CreatedAt),
		UpdatedAt:        response.DateTime(a.UpdatedAt),
	}
}

type itemResp struct {
	andamentoResp
	Intimacao intimacaoHTTP.EvaluationResp `json:"intimacao"`
}

func newItemResp(item andamento.Item) itemResp {
	return itemResp{
		andamentoResp: newAndamentoResp(item.Andamento),
		Intimacao:     intimacaoHTTP.NewEvaluationResp(item.Intimacao),
	}
}

type listResp struct {
	Items    []itemResp `json:"items"`
	Total    int        `json:"total"`
	Urgentes int        `json:"urgentes"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}

func (h *handler) newListResp(o andamento.ListOutput) listResp {
	items := make([]itemResp, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, newItemResp(it))
	}
	return listResp{
		Items:    items,
		Total:    o.Total,
		Urgentes: o.Urgentes,
		Limit:    o.Limit,
		Offset:   o.Offset,
	}
}

type countResp struct {
	Count int `json:"count"`
}

type importResp struct {
	NumeroCNJ string `json:"numero_cnj"`
	Fetched   int    `json:"fetched"`
	Inserted  int    `json:"inserted"`
}

func newImportResp(o andamento.ImportOutput) importResp {
	return importResp{NumeroCNJ: o.NumeroCNJ, Fetched: o.Fetched, Inserted: o.Inserted}
}
