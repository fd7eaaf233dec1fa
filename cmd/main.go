package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/concierge/internal/adapters/feed"
	"github.com/okian/concierge/internal/adapters/http/api"
	"github.com/okian/concierge/internal/adapters/http/swagger"
	service "github.com/okian/concierge/internal/app"
	"github.com/okian/concierge/internal/config"
	"github.com/okian/concierge/pkg/logger"
	"github.com/okian/concierge/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logging with defaults until the configuration is known
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Get().Error(ctx, "failed to load config", logger.Error(err))
		return 1
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithFormat(cfg.LogFormat)); err != nil {
		logger.Get().Warn(ctx, "invalid log settings; keeping defaults",
			logger.String("log_level", cfg.LogLevel),
			logger.String("log_format", cfg.LogFormat),
			logger.Error(err))
	}
	log := logger.Get()

	if err := metrics.RegisterRuntimeCollectors(metrics.GetRegistry()); err != nil {
		log.Warn(ctx, "failed to register runtime collectors", logger.Error(err))
	}

	svc := newService(cfg, log)
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		return 1
	}
	defer svc.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, svc, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server failure
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			return 1
		}
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
		return 1
	}

	log.Info(ctx, "server stopped")
	return 0
}

// newFeedLoader builds the external feed loader, or nil when no feeds are configured.
func newFeedLoader(cfg *config.Config, log logger.Logger) *feed.Loader {
	if len(cfg.Feeds) == 0 {
		return nil
	}
	sources := make([]feed.Source, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		sources = append(sources, feed.Source{Name: f.Name, URL: f.URL, Limit: f.Limit})
	}
	return feed.NewLoader(sources,
		feed.WithTimeout(cfg.FeedTimeout()),
		feed.WithLogger(log.Named("feed")),
		feed.WithMetrics(metrics.Global()),
	)
}

func newService(cfg *config.Config, log logger.Logger) *service.Service {
	opts := []service.Option{
		service.WithLogger(log.Named("service")),
		service.WithMetrics(metrics.Global()),
		service.WithEventLimit(cfg.EventLimit),
		service.WithDestinationLimit(cfg.DestinationLimit),
		service.WithLocation(cfg.Location()),
	}
	if loader := newFeedLoader(cfg, log); loader != nil {
		opts = append(opts, service.WithFeedLoader(loader))
	}
	return service.New(opts...)
}

// newHandler mounts the API and the documentation routes.
func newHandler(cfg *config.Config, svc *service.Service, log logger.Logger) http.Handler {
	apiServer := api.NewServer(svc,
		api.WithMaxBodyBytes(cfg.MaxBodyBytes),
		api.WithLogger(log.Named("http")),
	)
	r := api.NewRouter(apiServer)
	swagger.Register(r)
	return r
}
