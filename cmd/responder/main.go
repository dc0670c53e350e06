package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Alwanly/sec-edgar-navigator/internal/config"
	"github.com/Alwanly/sec-edgar-navigator/internal/server/responder/handler"
	"github.com/Alwanly/sec-edgar-navigator/internal/server/responder/usecase"
	"github.com/Alwanly/sec-edgar-navigator/pkg/deps"
	"github.com/Alwanly/sec-edgar-navigator/pkg/logger"
	"github.com/Alwanly/sec-edgar-navigator/pkg/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log, err := logger.NewLoggerFromEnv("responder")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting responder service")

	cfg, err := config.LoadResponderConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	app := fiber.New(handler.FiberConfig(log))

	app.Use(recover.New())
	app.Use(middleware.CanonicalLoggerMiddleware(log))

	deps := deps.App{
		Fiber:  app,
		Logger: log,
	}

	h := handler.NewHandler(deps, usecase.NewHelloApp())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := h.Startup(ctx); err != nil {
		log.WithError(err).Fatal("application startup failed")
	}

	gErr, gCtx := errgroup.WithContext(ctx)

	gErr.Go(func() error {
		log.Info("responder is running", logger.String("address", cfg.Addr()))
		if err := app.Listen(cfg.Addr()); err != nil {
			cancel()
			return err
		}
		return nil
	})

	gErr.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("failed to shutdown fiber app")
			return err
		}
		return nil
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Info("shutdown signal received")
		cancel()
	}()

	if err := gErr.Wait(); err != nil {
		log.WithError(err).Fatal("responder encountered an error")
	}

	log.Info("responder stopped gracefully")
}
