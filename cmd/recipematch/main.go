package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt-dz/recipematch/internal/api"
	"github.com/matt-dz/recipematch/internal/config"
	"github.com/matt-dz/recipematch/internal/env"
	"github.com/matt-dz/recipematch/internal/http"
	"github.com/matt-dz/recipematch/internal/log"
	"github.com/matt-dz/recipematch/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	bootLogger := log.New(nil)
	conf, err := config.LoadConfig()
	if err != nil {
		bootLogger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := log.New(conf.LogLevel.Level())

	client := http.New(http.DefaultConfig(logger))

	fs, err := setup.FileStore(conf)
	if err != nil {
		logger.Error("failed to setup file store", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}

	env := env.New(logger, conf, db, fs, client)

	logger.DebugContext(ctx, "seeding catalog")
	if err := setup.Seed(setupCtx, logger, conf, db, fs, client); err != nil {
		logger.Error("failed to seed catalog", slog.Any("error", err))
		os.Exit(1)
	}

	if err := api.Start(ctx, env); err != nil {
		env.Logger.Error("API Failed", slog.Any("error", err))
		os.Exit(1)
	}
}
