package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	httpadapter "abusetriage/internal/adapters/http"
	pg "abusetriage/internal/adapters/postgres"
	"abusetriage/internal/adapters/sqlite"
	"abusetriage/internal/adapters/telemetry"
	"abusetriage/internal/config"
	"abusetriage/internal/logging"
	"abusetriage/internal/ports"
	"abusetriage/internal/services/query"
	"abusetriage/internal/services/reports"
	"abusetriage/internal/services/status"
)

const serviceName = "abusetriage"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.Env)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownMetrics, err := telemetry.InitMetrics(ctx, telemetry.MetricConfig{
		ServiceName:    serviceName,
		ServiceVersion: version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownMetrics(sctx); err != nil {
			log.WithError(err).Warn("metrics shutdown failed")
		}
	}()
	metrics, err := telemetry.NewMetrics(otel.GetMeterProvider())
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := httpadapter.New(
		reports.New(store, metrics, log),
		status.New(store, metrics, log),
		query.New(store),
		store,
		log,
	).WithCORS(cfg.CORSAllowedOrigins)
	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": cfg.ListenAddr, "store": cfg.StoreDriver}).Info("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(sctx)
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, log *logrus.Logger) (ports.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		// The embedded store applies its migrations on every open.
		s, err := sqlite.Open(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	default:
		if cfg.AutoMigrate {
			if err := pg.Migrate(ctx, cfg.DatabaseURL, log); err != nil {
				return nil, err
			}
		}
		dbCfg := pg.DefaultDBConfig(cfg.DatabaseURL)
		dbCfg.MaxConns = cfg.DBMaxConns
		db, err := pg.Connect(ctx, dbCfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return db, nil
	}
}
