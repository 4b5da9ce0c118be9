package intimacao

import (
	"time"

	"legal-office-management/internal/model"
)

// Parser derives deadlines and urgency from intimação texts.
// Every method is a pure function of its arguments.
type Parser interface {
	// Parse extracts dates, prazo, status and urgency from descricao relative to now.
	Parse(descricao string, now time.Time) ParsedIntimacao

	// ParsePtr is Parse for nullable descriptions; nil behaves like "".
	ParsePtr(descricao *string, now time.Time) ParsedIntimacao

	// Evaluate parses and adds progress, badge classes and label.
	Evaluate(descricao *string, now time.Time) Evaluation

	// CountUrgentes counts unread, open andamentos whose urgency is critica or alta.
	CountUrgentes(andamentos []model.Andamento, now time.Time) int
}
