package http

import (
	"time"

	"legal-office-management/internal/model"
	"legal-office-management/internal/prazo"
	"legal-office-management/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ProjectID     string  `json:"project_id"      binding:"required"`
	ProcessoOABID *string `json:"processo_oab_id"`
	Title         string  `json:"title"           binding:"required,max=255"`
	Description   string  `json:"description"     binding:"max=5000"`
	Date          string  `json:"date"            binding:"required"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(date time.Time) prazo.CreateInput {
	return prazo.CreateInput{
		ProjectID:     r.ProjectID,
		ProcessoOABID: r.ProcessoOABID,
		Title:         r.Title,
		Description:   r.Description,
		Date:          date,
	}
}

// ---

type fromAndamentoReq struct {
	AndamentoID string `json:"-"` // populated from URI param
	ProjectID   string `json:"project_id" binding:"required"`
	Title       string `json:"title"      binding:"max=255"`
	Hoje        string `json:"hoje"`
}

func (r fromAndamentoReq) validate() error { return nil }

func (r fromAndamentoReq) toInput(now time.Time) prazo.FromAndamentoInput {
	return prazo.FromAndamentoInput{
		AndamentoID: r.AndamentoID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Now:         now,
	}
}

// ---

type listReq struct {
	ProjectID     string `form:"project_id"`
	ProcessoOABID string `form:"processo_oab_id"`
	From          string `form:"from"`
	To            string `form:"to"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput(from, to *time.Time) prazo.ListInput {
	return prazo.ListInput{
		ProjectID:     r.ProjectID,
		ProcessoOABID: r.ProcessoOABID,
		From:          from,
		To:            to,
		Limit:         r.Limit,
		Offset:        r.Offset,
	}
}

// --- Response DTOs ---

type prazoResp struct {
	ID              string            `json:"id"`
	ProjectID       string            `json:"project_id"`
	ProcessoOABID   *string           `json:"processo_oab_id"`
	AndamentoID     *string           `json:"andamento_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Date            response.Date     `json:"date"`
	CalendarEventID string            `json:"calendar_event_id,omitempty"`
	CreatedBy       string            `json:"created_by,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
}

func newPrazoResp(p model.Prazo) prazoResp {
	return prazoResp{
		ID:              p.ID,
		ProjectID:       p.ProjectID,
		ProcessoOABID:   p.ProcessoOABID,
		AndamentoID:     p.AndamentoID,
		Title:           p.Title,
		Description:     p.Description,
		Date:            response.Date(p.Date),
		CalendarEventID: p.CalendarEventID,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       response.DateTime(p.CreatedAt),
	}
}

type listResp struct {
	Prazos []prazoResp `json:"prazos"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func newListResp(o prazo.ListOutput) listResp {
	prazos := make([]prazoResp, 0, len(o.Prazos))
	for _, p := range o.Prazos {
		prazos = append(prazos, newPrazoResp(p))
	}
	return listResp{Prazos: prazos, Total: o.Total, Limit: o.Limit, Offset: o.Offset}
}
