package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"legal-office-management/config"
	_ "legal-office-management/docs" // Swagger docs
	"legal-office-management/internal/httpserver"
	"legal-office-management/internal/webhook"
	"legal-office-management/pkg/datemath"
	"legal-office-management/pkg/gcalendar"
	"legal-office-management/pkg/kafka"
	"legal-office-management/pkg/legaldata"
	"legal-office-management/pkg/log"
	"legal-office-management/pkg/postgre"
	"legal-office-management/pkg/redis"
)

// @title       Legal Office Management API
// @description Intimação parsing, deadline classification, docket entries and prazos for law offices.
// @version     1
// @host        localhost:8080
// @schemes     http
// @BasePath    /
// @securityDefinitions.apikey ApiKeyAuth
// @in          header
// @name        X-API-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Legal Office Management API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date math
	dateMathParser, err := datemath.NewParser(cfg.Intimacao.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Intimacao.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Infrastructure
	pool, err := postgre.Connect(ctx, postgre.Config{
		DSN:             cfg.Postgres.DSN,
		MaxConns:        cfg.Postgres.MaxConns,
		MinConns:        cfg.Postgres.MinConns,
		MaxConnIdleTime: cfg.Postgres.MaxConnIdleTime,
		MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer pool.Close()

	srvCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		APIKeys:         cfg.Auth.APIKeys,
		Postgres:        pool,
		DateMath:        dateMathParser,
		SyncTopic:       cfg.Kafka.SyncTopic,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		ReminderMinutes: cfg.GoogleCalendar.ReminderMinutes,
		PrazoTopic:      cfg.Kafka.PrazoTopic,
		WebhookEnabled:  cfg.Webhook.Enabled,
		WebhookSecurity: webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
	}

	// Redis cache (optional)
	if cfg.Redis.Addr != "" {
		cache := redis.New(redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			TTL:      cfg.Redis.TTL,
		})
		defer cache.Close()
		if err := cache.Ping(ctx); err != nil {
			logger.Warnf(ctx, "Redis not reachable yet (cache errors are tolerated): %v", err)
		}
		srvCfg.Cache = cache
	}

	// Kafka producer (optional)
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers}, logger)
		if err != nil {
			logger.Warnf(ctx, "Kafka not available (optional): %v", err)
		} else {
			defer producer.Close()
			srvCfg.Publisher = producer
			logger.Info(ctx, "✅ Kafka producer initialized")
		}
	}

	// Legal-data provider (optional)
	if cfg.LegalData.URL != "" {
		srvCfg.LegalData = legaldata.NewClient(cfg.LegalData.URL, cfg.LegalData.Token, cfg.LegalData.Timeout)
	}

	// Google Calendar client (optional)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			srvCfg.Calendar = calendarClient
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
