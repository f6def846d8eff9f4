package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvVars = []string{
	EnvPort, EnvLogLevel, EnvLogFormat, EnvLogAddSource, EnvServiceName, EnvVersion, EnvEnvironment,
	EnvStoreBackend, EnvDatabaseURL, EnvDBMaxConns, EnvDBMaxConnIdleTime, EnvDBMaxConnLifetime,
	EnvRunMigrations, EnvRecipesPath, EnvSeedPath, EnvResultCacheSize, EnvResultCacheTTL,
	EnvEventDeadLetterPath, EnvEventMaxRetries, EnvEventRetryDelay, EnvShutdownTimeout,
	EnvLogFile, EnvLogFileMaxSizeMB, EnvLogFileBackups, EnvDBConnectAttempts, EnvDBConnectBackoff,
	EnvAPIKey, EnvTrustedProxies, EnvRateLimitRPM,
}

// clearEnvVars unsets every variable Load reads, restoring them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// keep a stray .env in the working directory out of the picture
	t.Chdir(t.TempDir())
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "potioncraft", cfg.ServiceName)
		assert.Equal(t, StoreBackendMemory, cfg.StoreBackend)
		assert.False(t, cfg.UsesPostgres())
		assert.True(t, cfg.RunMigrations)
		assert.Equal(t, DefaultResultCacheTTL, cfg.ResultCacheTTL)
		assert.Empty(t, cfg.EventDeadLetterPath)
		assert.Empty(t, cfg.APIKey)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Equal(t, DefaultDBConnectAttempts, cfg.DBConnectAttempts)
		assert.Equal(t, DefaultRateLimitRPM, cfg.RateLimitRPM)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvStoreBackend, "postgres")
		t.Setenv(EnvDatabaseURL, "postgres://u:p@db:5432/potions")
		t.Setenv(EnvDBMaxConns, "25")
		t.Setenv(EnvRunMigrations, "false")
		t.Setenv(EnvRecipesPath, "/etc/potioncraft/recipes.yaml")
		t.Setenv(EnvResultCacheTTL, "90s")
		t.Setenv(EnvEventDeadLetterPath, "/var/lib/potioncraft/deadletter.jsonl")
		t.Setenv(EnvAPIKey, "s3cret")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, ,10.0.0.2")
		t.Setenv(EnvLogFile, "/var/log/potioncraft.log")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.True(t, cfg.UsesPostgres())
		assert.Equal(t, "postgres://u:p@db:5432/potions", cfg.DatabaseURL)
		assert.Equal(t, 25, cfg.DBMaxConns)
		assert.False(t, cfg.RunMigrations)
		assert.Equal(t, "/etc/potioncraft/recipes.yaml", cfg.RecipesPath)
		assert.Equal(t, 90*time.Second, cfg.ResultCacheTTL)
		assert.Equal(t, "/var/lib/potioncraft/deadletter.jsonl", cfg.EventDeadLetterPath)
		assert.Equal(t, "s3cret", cfg.APIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, "/var/log/potioncraft.log", cfg.LogFile)
		assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.LogFileMaxSizeMB)
	})

	t.Run("loads values from .env file", func(t *testing.T) {
		clearEnvVars(t)
		require.NoError(t, os.WriteFile(".env", []byte("PORT=9191\nSEED_PATH=seed.yaml\n"), 0o600))

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9191, cfg.Port)
		assert.Equal(t, "seed.yaml", cfg.SeedPath)
	})

	t.Run("rejects non-numeric port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "eighty")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PORT value")
	})

	t.Run("postgres backend requires a database url", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvStoreBackend, "postgres")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DatabaseURL is required when StoreBackend is postgres")
	})

	t.Run("seed path is rejected with postgres", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvStoreBackend, "postgres")
		t.Setenv(EnvDatabaseURL, "postgres://u:p@db:5432/potions")
		t.Setenv(EnvSeedPath, "seed.yaml")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SeedPath is only supported when StoreBackend is not postgres")
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvStoreBackend, "redis")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "StoreBackend must be one of [memory postgres]")
	})
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := &Config{
		Port:            70000,
		LogLevel:        "loud",
		LogFormat:       "text",
		ServiceName:     "potioncraft",
		StoreBackend:    StoreBackendMemory,
		DBMaxConns:      0,
		ResultCacheSize: 1,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port must be at most 65535")
	assert.Contains(t, err.Error(), `LogLevel must be one of [debug info warn warning error], got "loud"`)
	assert.Contains(t, err.Error(), "DBMaxConns must be at least 1")
}

func TestGetEnvHelpers(t *testing.T) {
	t.Run("int falls back on garbage", func(t *testing.T) {
		t.Setenv("POTIONCRAFT_TEST_INT", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("POTIONCRAFT_TEST_INT", 42))
		t.Setenv("POTIONCRAFT_TEST_INT", "-10")
		assert.Equal(t, -10, getEnvAsInt("POTIONCRAFT_TEST_INT", 42))
	})

	t.Run("bool parses strconv forms", func(t *testing.T) {
		t.Setenv("POTIONCRAFT_TEST_BOOL", "1")
		assert.True(t, getEnvAsBool("POTIONCRAFT_TEST_BOOL", false))
		t.Setenv("POTIONCRAFT_TEST_BOOL", "maybe")
		assert.False(t, getEnvAsBool("POTIONCRAFT_TEST_BOOL", false))
	})

	t.Run("duration falls back when unset", func(t *testing.T) {
		os.Unsetenv("POTIONCRAFT_TEST_DURATION")
		assert.Equal(t, time.Minute, getEnvAsDuration("POTIONCRAFT_TEST_DURATION", time.Minute))
		t.Setenv("POTIONCRAFT_TEST_DURATION", "250ms")
		assert.Equal(t, 250*time.Millisecond, getEnvAsDuration("POTIONCRAFT_TEST_DURATION", time.Minute))
	})
}
