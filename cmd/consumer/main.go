package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"legal-office-management/config"
	andamentoKafka "legal-office-management/internal/andamento/delivery/kafka"
	andamentoCache "legal-office-management/internal/andamento/repository/cache"
	andamentoRepo "legal-office-management/internal/andamento/repository/postgre"
	andamentoUC "legal-office-management/internal/andamento/usecase"
	"legal-office-management/internal/intimacao"
	"legal-office-management/pkg/datemath"
	"legal-office-management/pkg/kafka"
	"legal-office-management/pkg/log"
	"legal-office-management/pkg/postgre"
	"legal-office-management/pkg/redis"
)

// main is the entry point for the background consumer service.
// It drains provider movement batches from Kafka into the andamento store.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases
//  3. Create Kafka consumer group, wire handlers
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

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

	logger.Info(ctx, "Starting consumer service...")

	// Infrastructure
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

	var cache andamentoCache.Cache
	if cfg.Redis.Addr != "" {
		rdb := redis.New(redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			TTL:      cfg.Redis.TTL,
		})
		defer rdb.Close()
		cache = rdb
	}

	dateMathParser, err := datemath.NewParser(cfg.Intimacao.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Intimacao.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// UseCases. Cache invalidation keeps API readers consistent with consumer writes.
	repo := andamentoCache.New(andamentoRepo.New(pool, logger), cache, logger)
	uc := andamentoUC.New(logger, repo, intimacao.New(dateMathParser), nil)

	// Kafka consumer group
	consumer, err := kafka.NewConsumer(kafka.Config{
		Brokers:      cfg.Kafka.Brokers,
		GroupID:      cfg.Kafka.GroupID,
		BatchSize:    cfg.Kafka.BatchSize,
		BatchTimeout: cfg.Kafka.BatchTimeout,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create Kafka consumer: ", err)
		return
	}
	defer consumer.Close()

	logger.Infof(ctx, "Consuming %s as group %s", cfg.Kafka.SyncTopic, cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, cfg.Kafka.SyncTopic, andamentoKafka.New(logger, uc)); err != nil {
		logger.Error(ctx, "Consumer stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Consumer service stopped gracefully")
}
