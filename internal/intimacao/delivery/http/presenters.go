package http

import (
	"time"

	"legal-office-management/internal/intimacao"
	"legal-office-management/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Descricao *string `json:"descricao"`
	Hoje      string  `json:"hoje"`
}

func (r parseReq) validate() error { return nil }

// --- Response DTOs ---

// EvaluationResp is the JSON view of a parsed intimação. Other deliveries embed it.
type EvaluationResp struct {
	DataInicial   *response.Date `json:"dataInicial"`
	DataFinal     *response.Date `json:"dataFinal"`
	PrazoDias     *int           `json:"prazoDias"`
	DiasRestantes *int           `json:"diasRestantes"`
	Vencida       bool           `json:"vencida"`
	Status        string         `json:"status"`
	Urgencia      *string        `json:"urgencia"`
	StatusCodigo  *string        `json:"statusCodigo"`
	Progresso     int            `json:"progresso"`
	BadgeClasses  string         `json:"badgeClasses"`
	Label         string         `json:"label"`
}

// NewEvaluationResp maps an evaluation to its JSON view.
func NewEvaluationResp(e intimacao.Evaluation) EvaluationResp {
	var urgencia *string
	if e.Urgencia != nil {
		u := string(*e.Urgencia)
		urgencia = &u
	}
	return EvaluationResp{
		DataInicial:   response.NewDatePtr(e.DataInicial),
		DataFinal:     response.NewDatePtr(e.DataFinal),
		PrazoDias:     e.PrazoDias,
		DiasRestantes: e.DiasRestantes,
		Vencida:       e.Vencida,
		Status:        string(e.Status),
		Urgencia:      urgencia,
		StatusCodigo:  e.StatusCodigo,
		Progresso:     e.Progress,
		BadgeClasses:  e.BadgeClasses,
		Label:         e.Label,
	}
}

type parseResp struct {
	Hoje      response.Date  `json:"hoje"`
	Intimacao EvaluationResp `json:"intimacao"`
}

func newParseResp(hoje time.Time, e intimacao.Evaluation) parseResp {
	return parseResp{
		Hoje:      response.Date(hoje),
		Intimacao: NewEvaluationResp(e),
	}
}
