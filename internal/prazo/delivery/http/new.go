package http

import (
	"legal-office-management/internal/prazo"
	"legal-office-management/pkg/datemath"
	"legal-office-management/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    prazo.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the prazo domain.
func New(l log.Logger, uc prazo.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
