package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ghanabuild/estimator-backend/config"
	"github.com/ghanabuild/estimator-backend/internal/bootstrap"
	"github.com/ghanabuild/estimator-backend/internal/logging"
	cronjob "github.com/ghanabuild/estimator-backend/internal/projects/cron"
	"github.com/ghanabuild/estimator-backend/internal/projects/repository"
	"github.com/ghanabuild/estimator-backend/internal/telemetry"
)

const serviceName = "estimator-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.App.LogLevel, cfg.App.LogFormat)
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)
	ctx := context.Background()

	var store repository.Store = repository.NewMemoryStore()
	deps := bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Environment:    cfg.App.Environment,
		FrontendOrigin: cfg.Server.FrontendOrigin,
		RatePerMinute:  cfg.Estimate.RatePerMinute,
		Logger:         logger,
	}

	if cfg.Database.DSN != "" {
		pool, err := bootstrap.OpenRegistryDB(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("database unavailable", zap.Error(err))
		}
		defer pool.Close()
		deps.DB = pool

		sqlDB, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			logger.Fatal("database open failed", zap.Error(err))
		}
		defer sqlDB.Close()
		store = repository.NewPostgresStore(sqlDB)
	}
	deps.Store = store

	sinks := []telemetry.Sink{telemetry.NewLogSink(logger)}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()
		sinks = append(sinks, telemetry.NewRedisSink(rdb, logger))
	}
	deps.Sink = telemetry.NewMultiSink(sinks...)

	scheduler := cronjob.NewScheduler(store, logger)
	scheduler.Start()
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(deps)

	logger.Info("listening",
		zap.String("port", cfg.Server.Port),
		zap.String("environment", cfg.App.Environment))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
