package config

import "time"

// Store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "potioncraft"
	DefaultVersion           = "dev"
	DefaultEnvironment       = "dev"
	DefaultStoreBackend      = StoreBackendMemory
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour
	DefaultResultCacheSize   = 1024
	DefaultResultCacheTTL    = 30 * time.Minute
	DefaultEventMaxRetries   = 5
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultShutdownTimeout   = 15 * time.Second
	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileBackups    = 3
	DefaultDBConnectAttempts = 5
	DefaultDBConnectBackoff  = 500 * time.Millisecond
	DefaultRateLimitRPM      = 600
)

// Environment variable names
const (
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvLogAddSource        = "LOG_ADD_SOURCE"
	EnvServiceName         = "SERVICE_NAME"
	EnvVersion             = "VERSION"
	EnvEnvironment         = "ENVIRONMENT"
	EnvStoreBackend        = "STORE_BACKEND"
	EnvDatabaseURL         = "DATABASE_URL"
	EnvDBMaxConns          = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime   = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime   = "DB_MAX_CONN_LIFETIME"
	EnvRunMigrations       = "RUN_MIGRATIONS"
	EnvRecipesPath         = "RECIPES_PATH"
	EnvSeedPath            = "SEED_PATH"
	EnvResultCacheSize     = "RESULT_CACHE_SIZE"
	EnvResultCacheTTL      = "RESULT_CACHE_TTL"
	EnvEventDeadLetterPath = "EVENT_DEAD_LETTER_PATH"
	EnvEventMaxRetries     = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay     = "EVENT_RETRY_DELAY"
	EnvShutdownTimeout     = "SHUTDOWN_TIMEOUT"
	EnvLogFile             = "LOG_FILE"
	EnvLogFileMaxSizeMB    = "LOG_FILE_MAX_SIZE_MB"
	EnvLogFileBackups      = "LOG_FILE_BACKUPS"
	EnvDBConnectAttempts   = "DB_CONNECT_ATTEMPTS"
	EnvDBConnectBackoff    = "DB_CONNECT_BACKOFF"
	EnvAPIKey              = "API_KEY"
	EnvTrustedProxies      = "TRUSTED_PROXIES"
	EnvRateLimitRPM        = "RATE_LIMIT_RPM"
)
