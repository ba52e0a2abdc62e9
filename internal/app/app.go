package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/agrinet/internal/config"
	"github.com/yungbote/agrinet/internal/data/cache"
	"github.com/yungbote/agrinet/internal/data/db"
	apphttp "github.com/yungbote/agrinet/internal/http"
	"github.com/yungbote/agrinet/internal/observability"
	"github.com/yungbote/agrinet/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      *config.Config
	DB       *db.Service
	Cache    *cache.PredictionCache
	Metrics  *observability.Metrics
	Repos    Repos
	Services Services
	Handlers Handlers
	Server   *apphttp.Server

	otelShutdown func(context.Context) error
}

// New loads configuration from the file and environment and builds the app.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a, err := Build(ctx, cfg, log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return a, nil
}

var initOTel = observability.InitOTel

// Build wires every component from an already loaded config.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.NewNop()
	}
	a := &App{Log: log, Cfg: cfg}

	a.otelShutdown = initOTel(ctx, log, observability.OtelConfig{
		ServiceName: observability.DefaultServiceName,
		Environment: cfg.Env,
	})

	log.Info("Opening database...", "driver", cfg.Database.Driver)
	dbs, err := db.Open(cfg.Database, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init database: %w", err)
	}
	a.DB = dbs
	if err := db.AutoMigrateAll(dbs.DB()); err != nil {
		a.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	if cfg.Metrics.Enabled {
		a.Metrics = observability.NewMetrics()
	}

	if cfg.Redis.Addr != "" {
		pc, err := cache.NewPredictionCache(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, prediction cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			a.Cache = pc
		}
	}

	a.Repos = wireRepos(dbs.DB(), log)
	a.Services = wireServices(dbs.DB(), log, cfg, a.Repos, a.Cache, a.Metrics)

	a.Handlers, err = wireHandlers(log, cfg, a.Services)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Server = apphttp.NewServer(cfg.HTTP, wireRouter(log, cfg, a.Handlers, a.Metrics))
	return a, nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	ln, err := net.Listen("tcp", a.Cfg.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.Cfg.HTTP.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then drains in-flight requests.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", ln.Addr().String(), "model", a.Services.Diagnosis.EngineName())
		return a.Server.Serve(ln)
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := a.Cfg.HTTP.ShutdownTimeout.Duration
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		a.Log.Info("HTTP server shutting down")
		return a.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			a.Log.Warn("redis close failed", "error", err)
		}
		a.Cache = nil
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
		a.DB = nil
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
		a.otelShutdown = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
