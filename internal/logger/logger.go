// Package logger provides centralized logging using arbor.
package logger

import (
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/ternarybob/arbor"
	arborcommon "github.com/ternarybob/arbor/common"
	"github.com/ternarybob/arbor/models"

	"github.com/drake/tally/config"
)

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

// GetLogger returns the global logger instance.
// Before Setup runs it returns a logger that only keeps entries in memory,
// so nothing is written over the terminal UI.
func GetLogger() arbor.ILogger {
	loggerMutex.RLock()
	if globalLogger != nil {
		loggerMutex.RUnlock()
		return globalLogger
	}
	loggerMutex.RUnlock()

	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if globalLogger == nil {
		globalLogger = arbor.NewLogger().WithMemoryWriter(writerConfig(nil, models.LogWriterTypeMemory, ""))
	}
	return globalLogger
}

// InitLogger stores the provided logger as the global singleton instance.
func InitLogger(logger arbor.ILogger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	globalLogger = logger
}

// Setup builds the global logger from cfg. allowConsole is false while the
// full-screen UI owns the terminal; console output is then dropped even if
// configured.
func Setup(cfg *config.LogConfig, allowConsole bool) arbor.ILogger {
	logger := arbor.NewLogger()

	wantFile := slices.Contains(cfg.Output, "file")
	wantConsole := allowConsole && slices.Contains(cfg.Output, "console")

	if wantFile {
		logFile := cfg.File
		if logFile == "" {
			logFile = filepath.Join(config.LogDir(), "tally.log")
		}
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			if allowConsole {
				tmp := logger.WithConsoleWriter(writerConfig(cfg, models.LogWriterTypeConsole, ""))
				tmp.Warn().Err(err).Str("log_file", logFile).Msg("Failed to create log directory")
			}
		} else {
			logger = logger.WithFileWriter(writerConfig(cfg, models.LogWriterTypeFile, logFile))
		}
	}

	if wantConsole {
		logger = logger.WithConsoleWriter(writerConfig(cfg, models.LogWriterTypeConsole, ""))
	}

	// Memory writer keeps recent entries even when no visible output is configured.
	logger = logger.WithMemoryWriter(writerConfig(cfg, models.LogWriterTypeMemory, ""))

	logger = logger.WithLevelFromString(cfg.Level)

	InitLogger(logger)
	return logger
}

// writerConfig creates a writer configuration with user preferences.
func writerConfig(cfg *config.LogConfig, writerType models.LogWriterType, filename string) models.WriterConfiguration {
	timeFormat := "15:04:05.000"
	if cfg != nil && cfg.TimeFormat != "" {
		timeFormat = cfg.TimeFormat
	}

	outputType := models.OutputFormatLogfmt
	if cfg != nil && cfg.Format == "json" {
		outputType = models.OutputFormatJSON
	}

	return models.WriterConfiguration{
		Type:             writerType,
		FileName:         filename,
		TimeFormat:       timeFormat,
		OutputType:       outputType,
		DisableTimestamp: false,
		MaxSize:          10 * 1024 * 1024,
		MaxBackups:       3,
	}
}

// Stop flushes any remaining context logs before application shutdown.
func Stop() {
	arborcommon.Stop()
}
