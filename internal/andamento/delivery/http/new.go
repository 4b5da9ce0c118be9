package http

import (
	"legal-office-management/internal/andamento"
	"legal-office-management/pkg/datemath"
	"legal-office-management/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    andamento.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the andamento domain.
func New(l log.Logger, uc andamento.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
