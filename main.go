package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marketplace-api/api"
	"marketplace-api/config"
	"marketplace-api/services"
	"marketplace-api/storage"
	"marketplace-api/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "marketplace-api: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLoggerWithOptions(utils.LogOptions{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "marketplace-api: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("=== Marketplace API starting ===")
	if !cfg.DotEnvLoaded {
		logger.Debug("[config] No .env file found, falling back to system env vars")
	}
	if cfg.File != "" {
		logger.Info("[config] Loaded %s", cfg.File)
	}
	logger.Info("Config — addr: %s | metrics: %v | rate limit: %.2f rps | cors: %v",
		cfg.HTTP.Addr, cfg.Metrics.Enabled, cfg.RateLimit.RPS, cfg.CORS.AllowOrigins)

	catalog, err := storage.NewSeedCatalog()
	if err != nil {
		logger.Error("Invalid seed catalog: %v", err)
		os.Exit(1)
	}

	svc := services.NewMarketplaceService(catalog, logger)
	services.NewInsightService(logger).Log(svc.Summary())

	srv, err := api.NewServer(svc, api.ServerOptions{
		Addr:            cfg.HTTP.Addr,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		IdleTimeout:     cfg.HTTP.IdleTimeout,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		AllowOrigins:    cfg.CORS.AllowOrigins,
		RateLimitRPS:    cfg.RateLimit.RPS,
		RateLimitBurst:  cfg.RateLimit.Burst,
		MetricsEnabled:  cfg.Metrics.Enabled,
		Logger:          logger,
	})
	if err != nil {
		logger.Error("Failed to build server: %v", err)
		os.Exit(1)
	}
	logger.Info("Serving marketplace API on http://%s", srv.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Stopped")
}
