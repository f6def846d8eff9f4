package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/potioncraft/docs/swagger"
	"github.com/osse101/potioncraft/internal/catalog"
	"github.com/osse101/potioncraft/internal/concurrency"
	"github.com/osse101/potioncraft/internal/config"
	"github.com/osse101/potioncraft/internal/crafting"
	"github.com/osse101/potioncraft/internal/database"
	"github.com/osse101/potioncraft/internal/database/memory"
	"github.com/osse101/potioncraft/internal/database/postgres"
	"github.com/osse101/potioncraft/internal/event"
	"github.com/osse101/potioncraft/internal/metrics"
	"github.com/osse101/potioncraft/internal/repository"
	"github.com/osse101/potioncraft/internal/server"
)

// itemStore is what the crafting service and the HTTP surface need from a backend
type itemStore interface {
	repository.ItemStore
	repository.ActorStore
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("potioncraft exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile := initLogger(cfg)
	defer logFile.Close()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	slog.Info("recipe catalog loaded", "recipes", cat.Len(), "grades", cat.Grades())

	store, pool, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	var publisher event.Bus = bus
	if cfg.EventDeadLetterPath != "" {
		rp, err := event.NewResilientPublisher(bus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath)
		if err != nil {
			return fmt.Errorf("creating event publisher: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := rp.Shutdown(shutdownCtx); err != nil {
				slog.Error("event publisher shutdown", "error", err)
			}
		}()
		publisher = rp
	}

	svc := crafting.NewService(cat, store, concurrency.NewLockManager(), publisher, crafting.Options{
		CacheSize: cfg.ResultCacheSize,
		CacheTTL:  cfg.ResultCacheTTL,
	})

	// A nil *pgxpool.Pool must not become a non-nil interface
	var readiness database.Pool
	if pool != nil {
		readiness = pool
	}

	swagger.SwaggerInfo.Version = cfg.Version

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPM:   cfg.RateLimitRPM,
	}, readiness, svc, store)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	slog.Info("potioncraft stopped")
	return nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.RecipesPath == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("loading embedded recipes: %w", err)
		}
		return cat, nil
	}

	cat, err := catalog.LoadFile(cfg.RecipesPath)
	if err != nil {
		return nil, fmt.Errorf("loading recipes from %s: %w", cfg.RecipesPath, err)
	}
	return cat, nil
}

// openStore selects the item backend. The pool is nil for the memory store.
func openStore(ctx context.Context, cfg *config.Config) (itemStore, *pgxpool.Pool, error) {
	if !cfg.UsesPostgres() {
		store := memory.NewItemStore()
		if cfg.SeedPath != "" {
			if err := store.LoadSeedFile(cfg.SeedPath); err != nil {
				return nil, nil, err
			}
			slog.Info("memory store seeded", "path", cfg.SeedPath)
		}
		return store, nil, nil
	}

	pool, err := database.ConnectWithRetry(ctx, cfg.DatabaseURL, cfg.DBMaxConns,
		cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime, cfg.DBConnectAttempts, cfg.DBConnectBackoff)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	if cfg.RunMigrations {
		if err := database.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
	}

	return postgres.NewItemStore(pool), pool, nil
}
