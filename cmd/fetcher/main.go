package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Alwanly/sec-edgar-navigator/internal/config"
	"github.com/Alwanly/sec-edgar-navigator/internal/fetcher/usecase"
	"github.com/Alwanly/sec-edgar-navigator/pkg/cache"
	"github.com/Alwanly/sec-edgar-navigator/pkg/database"
	"github.com/Alwanly/sec-edgar-navigator/pkg/deps"
	"github.com/Alwanly/sec-edgar-navigator/pkg/logger"
)

func main() {
	log, err := logger.NewLoggerFromEnv("fetcher")
	if err != nil {
		panic(err)
	}

	if err := run(context.Background(), log); err != nil {
		log.WithError(err).Error("fetcher failed")
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
}

// run performs one filing run. Resources are released before it returns,
// on success and on failure alike.
func run(parent context.Context, log *logger.CanonicalLogger) error {
	cfg, err := config.LoadFetcherConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	runID := uuid.Must(uuid.NewV7()).String()
	log = log.WithRunID(runID)

	log.Info("configuration loaded",
		logger.String("download_root", cfg.DownloadRoot),
		logger.String("database_path", cfg.DatabasePath),
		logger.Duration("request_timeout", cfg.RequestTimeout),
		logger.Int("max_retries", cfg.MaxRetries),
	)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	lc := logger.NewLogContext()
	ctx = logger.WithLogContext(ctx, lc)
	ctx = logger.WithCorrelationID(ctx, runID)

	db, err := database.NewSQLiteDB(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()

	if err := database.RunMigrations(db); err != nil {
		return err
	}

	d := deps.App{
		Logger:   log,
		Database: db,
	}

	if cfg.Redis.Enabled() {
		c, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		}, log)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, continuing without CIK cache")
		} else {
			d.Cache = c
			defer c.Close()
		}
	}

	uc := usecase.NewUseCase(d, cfg)

	start := time.Now()
	artifacts, err := uc.Fetch(ctx, config.DefaultFilingRequest())

	fields := append(lc.Fields(),
		logger.Duration("duration", time.Since(start)),
		logger.Bool(logger.FieldSuccess, err == nil),
	)
	if err != nil {
		log.WithError(err).Error("filing run", fields...)
		return err
	}

	log.Info("filing run", fields...)
	for _, a := range artifacts {
		log.Info("filing available",
			logger.Accession(a.AccessionNumber),
			logger.String("path", a.Path),
		)
	}
	return nil
}
