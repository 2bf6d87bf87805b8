package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/hockey-bracket-service/internal/app/brackets"
	"github.com/preston-bernstein/hockey-bracket-service/internal/config"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	httpserver "github.com/preston-bernstein/hockey-bracket-service/internal/http"
	"github.com/preston-bernstein/hockey-bracket-service/internal/http/handlers"
	"github.com/preston-bernstein/hockey-bracket-service/internal/logging"
	"github.com/preston-bernstein/hockey-bracket-service/internal/metrics"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers"
	"github.com/preston-bernstein/hockey-bracket-service/internal/snapshots"
	"github.com/preston-bernstein/hockey-bracket-service/internal/store"
	"github.com/preston-bernstein/hockey-bracket-service/internal/warmer"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	service       *brackets.Service
	httpServer    httpServer
	metricsServer httpServer
	warmer        Warmer
	metricsStop   func(context.Context) error
	cacheClose    func() error
}

// New constructs a server with default provider, cache and warmer wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	cache, cacheClose := buildCache(context.Background(), cfg.Cache, logger)
	svc := buildService(cfg, provider, cache, logger, recorder)
	wrm := buildWarmer(cfg, svc, logger, recorder)
	httpSrv := buildHTTPServer(cfg, svc, logger, recorder, wrm)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		service:       svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		warmer:        wrm,
		metricsStop:   metricsShutdown,
		cacheClose:    cacheClose,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *brackets.Service, httpSrv httpServer, wrm Warmer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		service:    svc,
		httpServer: httpSrv,
		warmer:     wrm,
	}
}

func buildService(cfg config.Config, provider providers.DataProvider, cache store.Cache, logger *slog.Logger, recorder *metrics.Recorder) *brackets.Service {
	return brackets.NewService(provider, cache, brackets.Options{
		Format:              bracket.StandardFormat.WithTeamsPerConference(cfg.Playoffs.TeamsPerConference),
		CacheTTL:            cfg.Cache.TTL,
		ExplicitElimination: cfg.Playoffs.HasExplicitEliminationData,
		Archive:             buildArchive(cfg.Snapshots, logger),
	}, logger, recorder)
}

// buildArchive returns a nil interface when snapshots are disabled so the service skips archive reads.
func buildArchive(cfg config.SnapshotsConfig, logger *slog.Logger) brackets.Archive {
	if !cfg.Enabled || cfg.Folder == "" {
		return nil
	}
	logging.Info(logger, "bracket snapshot archive enabled", "folder", cfg.Folder, "seasons_per_league", cfg.SeasonsPerLeague)
	return snapshots.NewArchive(cfg.Folder, cfg.SeasonsPerLeague)
}

// buildWarmer returns nil when no warm targets are configured.
func buildWarmer(cfg config.Config, svc *brackets.Service, logger *slog.Logger, recorder *metrics.Recorder) Warmer {
	if cfg.Warm.TargetsErr != nil {
		logging.Warn(logger, "ignoring malformed warm targets", "err", cfg.Warm.TargetsErr)
	}
	if !cfg.Warm.Enabled() {
		return nil
	}
	return warmer.New(svc, cfg.Warm.Targets, logger, recorder, cfg.Warm.Interval)
}

func buildHTTPServer(cfg config.Config, svc *brackets.Service, logger *slog.Logger, recorder *metrics.Recorder, wrm Warmer) httpServer {
	var statusFn func() warmer.Status
	if wrm != nil {
		statusFn = wrm.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(svc, logger, statusFn)
	var admin *handlers.AdminHandler
	// Only mount the admin refresh endpoint if a token is set.
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(svc, cfg.AdminToken, logger)
	}

	router := httpserver.NewRouter(handler, httpserver.RouterConfig{
		Logger:         logger,
		Recorder:       recorder,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Admin:          admin,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the warmer and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.warmer != nil {
		s.warmer.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.warmer != nil {
		if err := s.warmer.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop warmer", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.cacheClose != nil {
		if err := s.cacheClose(); err != nil && s.logger != nil {
			s.logger.Warn("cache close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
