package model

import "time"

// Prazo is a deadline entry on the office calendar.
type Prazo struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	ProcessoOABID   *string   `json:"processo_oab_id,omitempty"`
	AndamentoID     *string   `json:"andamento_id,omitempty"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	CalendarEventID string    `json:"calendar_event_id,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
