package main

import (
	"io"
	"os"

	"github.com/osse101/potioncraft/internal/config"
	"github.com/osse101/potioncraft/internal/logger"
)

// initLogger installs the default logger from app configuration. The returned
// closer flushes the log file, if one is configured.
func initLogger(cfg *config.Config) io.Closer {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.LogAddSource,
	)

	if cfg.LogFile == "" {
		logger.InitLogger(loggerConfig)
		return io.NopCloser(nil)
	}

	file := logger.NewFileWriter(cfg.LogFile, cfg.LogFileMaxSizeMB, cfg.LogFileBackups)
	logger.InitLoggerWithWriter(loggerConfig, io.MultiWriter(os.Stdout, file))
	return file
}
