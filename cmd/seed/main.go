package main

import (
	"context"
	"flag"
	"time"

	"go-attendo/internal/app"
	"go-attendo/internal/config"
	"go-attendo/internal/seed"
	"go-attendo/internal/shared/connection"

	"go.uber.org/zap"
)

func main() {
	seedValue := flag.Uint64("seed", 42, "random seed for generated attendance")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	ctx := context.Background()
	if err := app.Migrate(ctx, db); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	err = seed.Run(ctx, db, seed.Options{
		Seed:     *seedValue,
		Today:    time.Now(),
		Location: cfg.Attendance.Location,
	}, logger)
	if err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
