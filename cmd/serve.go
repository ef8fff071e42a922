package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nutritrack/config"
	"nutritrack/metrics"
	"nutritrack/routes"
	"nutritrack/services"
	"nutritrack/utils"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set; protected routes will refuse every request")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := config.InitStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	catalog, err := services.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	var putter services.ObjectPutter
	if cfg.S3Bucket != "" {
		up, err := utils.NewS3Uploader(ctx, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			logger.Warn("S3 backups disabled", zap.Error(err))
		} else {
			putter = up
		}
	}

	metrics.Register()

	hub := services.NewRealtimeHub()
	events := services.NewEventBus(hub, logger)
	profiles := services.NewProfileService(st, logger)
	coins := services.NewCoinService(st, logger)
	foods := services.NewFoodLogService(st, profiles, coins, events, logger)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRouter(routes.Deps{
		JWTSecret:  []byte(cfg.JWTSecret),
		Log:        logger,
		Profiles:   profiles,
		Onboarding: services.NewOnboardingService(profiles, coins, events, logger),
		Foods:      foods,
		Coins:      coins,
		Coach:      services.NewCoachService(coins, events, logger),
		Catalog:    catalog,
		Analytics:  services.NewAnalyticsService(foods, profiles),
		Backup:     services.NewBackupService(st, putter, cfg.BackupPrefix, logger),
		Realtime:   hub,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
