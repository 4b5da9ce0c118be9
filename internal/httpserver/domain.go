package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"legal-office-management/internal/andamento"
	andamentoHTTP "legal-office-management/internal/andamento/delivery/http"
	andamentoCache "legal-office-management/internal/andamento/repository/cache"
	andamentoRepo "legal-office-management/internal/andamento/repository/postgre"
	andamentoUC "legal-office-management/internal/andamento/usecase"
	"legal-office-management/internal/intimacao"
	intimacaoHTTP "legal-office-management/internal/intimacao/delivery/http"
	prazoHTTP "legal-office-management/internal/prazo/delivery/http"
	prazoRepo "legal-office-management/internal/prazo/repository/postgre"
	prazoUC "legal-office-management/internal/prazo/usecase"
	"legal-office-management/internal/webhook"
)

// Pattern followed by each domain:
//  1. Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. HTTP Handler: h := mydomainHTTP.New(srv.l, uc, srv.dateMath)
//  4. Routes:       mydomainHTTP.RegisterRoutes(api, h, srv.mw)

// setupIntimacaoDomain registers the stateless parser endpoint.
func (srv HTTPServer) setupIntimacaoDomain(ctx context.Context, api *gin.RouterGroup) {
	h := intimacaoHTTP.New(srv.l, intimacao.New(srv.dateMath), srv.dateMath)
	intimacaoHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Intimacao domain registered")
}

// setupAndamentoDomain registers the docket entry routes and returns the use case
// shared with the prazo domain and the webhook.
func (srv HTTPServer) setupAndamentoDomain(ctx context.Context, api *gin.RouterGroup) andamento.UseCase {
	// 1. Repository, with the read-through cache when Redis is configured
	var cache andamentoCache.Cache
	if srv.cache != nil {
		cache = srv.cache
	} else {
		srv.l.Warnf(ctx, "Redis not configured, andamento cache disabled")
	}
	repo := andamentoCache.New(andamentoRepo.New(srv.postgresDB, srv.l), cache, srv.l)

	// 2. UseCase
	var provider andamento.Provider
	if srv.legalData != nil {
		provider = srv.legalData
	} else {
		srv.l.Warnf(ctx, "Legal-data provider not configured, import disabled")
	}
	uc := andamentoUC.New(srv.l, repo, intimacao.New(srv.dateMath), provider)

	// 3. HTTP Handler
	h := andamentoHTTP.New(srv.l, uc, srv.dateMath)

	// 4. Routes
	andamentoHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Andamento domain registered")
	return uc
}

// setupPrazoDomain registers the deadline routes.
func (srv HTTPServer) setupPrazoDomain(ctx context.Context, api *gin.RouterGroup, andamentos andamento.UseCase) {
	repo := prazoRepo.New(srv.postgresDB, srv.l)

	uc := prazoUC.New(srv.l, repo, andamentos, srv.dateMath, prazoUC.Config{
		Calendar:        srv.calendar,
		CalendarID:      srv.calendarID,
		ReminderMinutes: srv.reminderMinutes,
		Publisher:       srv.publisher,
		Topic:           srv.prazoTopic,
	})

	h := prazoHTTP.New(srv.l, uc, srv.dateMath)
	prazoHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Prazo domain registered (agenda sync: %t, events: %t)", srv.calendar != nil, srv.publisher != nil)
}

// setupWebhook registers the provider push endpoint outside /api/v1; it is
// authenticated by signature instead of API key.
func (srv HTTPServer) setupWebhook(ctx context.Context, ingester webhook.Ingester) {
	h := webhook.NewHandler(ingester, srv.publisher, srv.syncTopic, srv.webhookSecurity, srv.l)
	srv.gin.POST("/webhook/legaldata", h.HandleLegalDataWebhook)

	if srv.publisher != nil {
		srv.l.Infof(ctx, "Legal-data webhook registered at POST /webhook/legaldata (relay to %s)", srv.syncTopic)
	} else {
		srv.l.Infof(ctx, "Legal-data webhook registered at POST /webhook/legaldata (direct ingest)")
	}
}
