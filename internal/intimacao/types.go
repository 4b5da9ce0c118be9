package intimacao

import "time"

// Status is the open/closed state derived from an intimação text.
type Status string

// Urgencia is the urgency tier derived from the business days left.
type Urgencia string

// ParsedIntimacao is the structure extracted from an andamento description.
// It is derived on every call and never stored.
type ParsedIntimacao struct {
	DataInicial   *time.Time
	DataFinal     *time.Time
	PrazoDias     *int
	DiasRestantes *int // business days; <= 0 means vencida
	Vencida       bool
	Status        Status
	Urgencia      *Urgencia // nil when there is no DataFinal or the entry is closed
	StatusCodigo  *string
}

// Evaluation bundles a parse result with the values the UI renders from it.
type Evaluation struct {
	ParsedIntimacao
	Progress     int
	BadgeClasses string
	Label        string
}
