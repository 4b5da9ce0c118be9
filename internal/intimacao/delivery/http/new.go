package http

import (
	"legal-office-management/internal/intimacao"
	"legal-office-management/pkg/datemath"
	"legal-office-management/pkg/log"
)

type handler struct {
	l      log.Logger
	parser intimacao.Parser
	dates  *datemath.Parser
}

// New creates the HTTP handler for the stateless intimação endpoints.
func New(l log.Logger, parser intimacao.Parser, dates *datemath.Parser) *handler {
	return &handler{
		l:      l,
		parser: parser,
		dates:  dates,
	}
}
