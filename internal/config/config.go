package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port         int    `validate:"min=1,max=65535"`
	LogLevel     string `validate:"oneof=debug info warn warning error"`
	LogFormat    string `validate:"oneof=json text"`
	LogAddSource bool
	ServiceName  string `validate:"required"`
	Version      string
	Environment  string

	// LogFile additionally writes logs to a rotating file when set
	LogFile          string
	LogFileMaxSizeMB int `validate:"min=1"`
	LogFileBackups   int `validate:"min=0"`

	StoreBackend      string `validate:"oneof=memory postgres"`
	DatabaseURL       string `validate:"required_if=StoreBackend postgres"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RunMigrations     bool
	DBConnectAttempts int `validate:"min=1"`
	DBConnectBackoff  time.Duration

	// RecipesPath overrides the embedded recipe catalog when set
	RecipesPath string
	// SeedPath preloads actors into the memory store
	SeedPath string `validate:"excluded_if=StoreBackend postgres"`

	ResultCacheSize int `validate:"min=1"`
	ResultCacheTTL  time.Duration

	// EventDeadLetterPath enables retrying event delivery with a dead-letter file
	EventDeadLetterPath string
	EventMaxRetries     int `validate:"min=0"`
	EventRetryDelay     time.Duration

	// APIKey guards /api routes when set
	APIKey         string
	TrustedProxies []string
	RateLimitRPM   int `validate:"min=0"`

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}

	cfg := &Config{
		Port:         port,
		LogLevel:     strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:    strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogAddSource: getEnvAsBool(EnvLogAddSource, false),
		ServiceName:  getEnv(EnvServiceName, DefaultServiceName),
		Version:      getEnv(EnvVersion, DefaultVersion),
		Environment:  getEnv(EnvEnvironment, DefaultEnvironment),

		LogFile:          getEnv(EnvLogFile, ""),
		LogFileMaxSizeMB: getEnvAsInt(EnvLogFileMaxSizeMB, DefaultLogFileMaxSizeMB),
		LogFileBackups:   getEnvAsInt(EnvLogFileBackups, DefaultLogFileBackups),

		StoreBackend:      strings.ToLower(getEnv(EnvStoreBackend, DefaultStoreBackend)),
		DatabaseURL:       getEnv(EnvDatabaseURL, ""),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		RunMigrations:     getEnvAsBool(EnvRunMigrations, true),
		DBConnectAttempts: getEnvAsInt(EnvDBConnectAttempts, DefaultDBConnectAttempts),
		DBConnectBackoff:  getEnvAsDuration(EnvDBConnectBackoff, DefaultDBConnectBackoff),

		RecipesPath: getEnv(EnvRecipesPath, ""),
		SeedPath:    getEnv(EnvSeedPath, ""),

		ResultCacheSize: getEnvAsInt(EnvResultCacheSize, DefaultResultCacheSize),
		ResultCacheTTL:  getEnvAsDuration(EnvResultCacheTTL, DefaultResultCacheTTL),

		EventDeadLetterPath: getEnv(EnvEventDeadLetterPath, ""),
		EventMaxRetries:     getEnvAsInt(EnvEventMaxRetries, DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration(EnvEventRetryDelay, DefaultEventRetryDelay),

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		RateLimitRPM:   getEnvAsInt(EnvRateLimitRPM, DefaultRateLimitRPM),

		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsesPostgres reports whether items are kept in PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.StoreBackend == StoreBackendPostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
