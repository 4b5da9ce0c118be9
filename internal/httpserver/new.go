package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"legal-office-management/internal/andamento"
	andamentoCache "legal-office-management/internal/andamento/repository/cache"
	"legal-office-management/internal/middleware"
	"legal-office-management/internal/prazo"
	"legal-office-management/internal/webhook"
	"legal-office-management/pkg/datemath"
	pkgKafka "legal-office-management/pkg/kafka"
	"legal-office-management/pkg/log"
	pkgPostgre "legal-office-management/pkg/postgre"
)

// Database is the Postgres handle the repositories and the readiness probe need.
// *pgxpool.Pool satisfies it.
type Database interface {
	pkgPostgre.DB
	Ping(ctx context.Context) error
}

// Cache is the Redis handle. *redis.Client satisfies it.
type Cache interface {
	andamentoCache.Cache
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Infrastructure
	postgresDB Database
	cache      Cache
	publisher  pkgKafka.Publisher
	dateMath   *datemath.Parser

	// Andamento domain
	legalData andamento.Provider
	syncTopic string

	// Prazo domain
	calendar        prazo.Calendar
	calendarID      string
	reminderMinutes []int64
	prazoTopic      string

	// Provider webhook
	webhookEnabled  bool
	webhookSecurity webhook.SecurityConfig
}

// Config is the dependency bag passed to New().
// Cache, Publisher, LegalData and Calendar are optional and must be left nil
// (not a typed nil pointer) when not configured.
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	APIKeys     []string

	// Infrastructure
	Postgres  Database
	Cache     Cache
	Publisher pkgKafka.Publisher
	DateMath  *datemath.Parser

	// Andamento domain
	LegalData andamento.Provider
	SyncTopic string

	// Prazo domain
	Calendar        prazo.Calendar
	CalendarID      string
	ReminderMinutes []int64
	PrazoTopic      string

	// Provider webhook
	WebhookEnabled  bool
	WebhookSecurity webhook.SecurityConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, cfg.APIKeys),
		postgresDB:      cfg.Postgres,
		cache:           cfg.Cache,
		publisher:       cfg.Publisher,
		dateMath:        cfg.DateMath,
		legalData:       cfg.LegalData,
		syncTopic:       cfg.SyncTopic,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		reminderMinutes: cfg.ReminderMinutes,
		prazoTopic:      cfg.PrazoTopic,
		webhookEnabled:  cfg.WebhookEnabled,
		webhookSecurity: cfg.WebhookSecurity,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres is required")
	}
	if srv.dateMath == nil {
		return errors.New("date math parser is required")
	}
	return nil
}
