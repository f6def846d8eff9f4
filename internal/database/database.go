package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/osse101/potioncraft/internal/database/migrations"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool creates a new PostgreSQL connection pool
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns > 0 {
		config.MaxConns = int32(maxConns)
	}
	if config.MaxConns >= DefaultMinConnections {
		config.MinConns = DefaultMinConnections
	}
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase)
	return pool, nil
}

// ConnectWithRetry opens a pool like NewPool, retrying with exponential backoff
// while the database is unreachable. A malformed connection string fails at once.
func ConnectWithRetry(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration, attempts int, backoff time.Duration) (*pgxpool.Pool, error) {
	if _, err := pgxpool.ParseConfig(connString); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	if attempts < 1 {
		attempts = 1
	}
	if backoff <= 0 {
		backoff = DefaultConnectBackoff
	}

	b := retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(backoff))
	attempt := 0

	var pool *pgxpool.Pool
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		p, err := NewPool(ctx, connString, maxConns, maxIdle, maxLife)
		if err != nil {
			slog.Default().Warn(LogMsgConnectAttemptFailed, "attempt", attempt, "of", attempts, "error", err)
			return retry.RetryableError(err)
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgConnectGaveUpFmt, attempt, err)
	}
	return pool, nil
}

// RunMigrations applies the embedded goose migrations to the database at dsn
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open(SQLDriverName, dsn)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrationDB, err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied)
	return nil
}
