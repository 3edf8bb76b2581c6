package server

import (
	"context"
	"errors"
	"fmt"
	"founderdeck/internal/auth"
	"founderdeck/internal/config"
	"founderdeck/internal/data"
	"founderdeck/internal/github"
	"founderdeck/internal/jobs"
	"founderdeck/internal/mailer"
	"founderdeck/internal/metrics"
	"founderdeck/internal/middlewares"
	"founderdeck/internal/settings"
	"founderdeck/internal/storage"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	cache       data.CacheProvider
	jobManager  *jobs.JobManager
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	var oidcProvider middlewares.OIDCProvider
	if cfg.OIDC.IssuerURL != "" {
		oidcProvider, err = auth.NewRealOIDCProvider(ctx, cfg.OIDC)
		if err != nil {
			cancel()
			return nil, err
		}
	} else {
		logger.Warn("no OIDC issuer configured, sign-in is unavailable")
	}

	cache, err := data.NewCacheProvider(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to set up cache provider: %w", err)
	}

	if redisCache, ok := cache.(*data.RedisCache); ok {
		collector := redisprometheus.NewCollector(metrics.Namespace, "cache", redisCache.Client())
		if err := prometheus.Register(collector); err != nil {
			logger.Debug("failed to register redis cache collector: already registered", "error", err)
		}
	}

	var store storage.Provider
	if cfg.Storage.Configured {
		dbProvider, err := storage.NewDatabaseProvider(ctx, cfg)
		if err != nil {
			logger.Error("failed to initialize database provider", "error", err)
			cancel()
			return nil, err
		}

		logger.Debug("Running database migrations")
		if err := dbProvider.RunMigrations(ctx); err != nil {
			logger.Error("failed to run database migrations", "error", err)
			cancel()
			return nil, err
		}
		logger.Debug("Database Migrations Completed")

		store = dbProvider
	} else {
		logger.Warn("storage backend not configured, serving demo data")
	}

	resolver := settings.NewResolver(cfg, store)
	githubClient := github.NewClient()
	resendClient := mailer.NewResendClient()

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessionManager, oidcProvider, githubClient, resendClient, resolver, cache, store)

	jobManager := jobs.NewJobManager(logger)
	if store != nil {
		jobManager.Register(jobs.NewServerHealthJob(store, cfg.Dashboard.HealthCheckInterval, logger))
	}

	router := setupRouter(appCtx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugRouter := setupDebugRouter()
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: debugRouter,
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		cache:       cache,
		jobManager:  jobManager,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	s.jobManager.Start(s.appCtx)

	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Debug server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.jobManager.Shutdown(shutdownCtx)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	if s.appCtx.Storage != nil {
		s.appCtx.Storage.Close()
	}

	if err := s.cache.Close(); err != nil {
		s.logger.Error("Failed to close cache", "error", err)
	}

	s.logger.Info("Server Exited")
	return nil
}
