package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/gridnav/config"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const componentKey = "component"

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// Loggers are cached per component, so repeated calls are cheap.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	entry := newLoggerWithConfig(component, logCfg, isInteractive())
	loggers[component] = entry
	return entry
}

// Reset drops every cached logger. Intended for tests and for commands that
// change the logging configuration at runtime.
func Reset() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	loggers = make(map[string]*logrus.Entry)
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// newLoggerWithConfig builds a logger from an explicit configuration.
func newLoggerWithConfig(component string, logCfg Config, interactive bool) *logrus.Entry {
	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if env := os.Getenv("GRIDNAV_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("GRIDNAV_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	var writers []io.Writer

	if logFilePath := logFilePath(component, logCfg); logFilePath != "" {
		if file, err := openLogFile(logFilePath); err == nil {
			writers = append(writers, file)
		} else if logCfg.File.Enabled {
			// Only warn if explicitly configured
			logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
		}
	}

	if shouldLogToStderr(logCfg, logger.GetLevel(), interactive) {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		// Interactive TUI sessions without a file sink stay silent.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField(componentKey, component)
}

// logFilePath resolves the file sink. File logging is opt-in: without
// file.enabled nothing is written to disk.
func logFilePath(component string, logCfg Config) string {
	if !logCfg.File.Enabled {
		return ""
	}
	if logCfg.File.Path != "" {
		return expandPath(logCfg.File.Path)
	}

	dateStr := time.Now().Format("2006-01-02")
	name := fmt.Sprintf("%s-%s.log", component, dateStr)
	if cwd, err := os.Getwd(); err == nil {
		return filepath.Join(cwd, ".gridnav", "logs", name)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".gridnav", "logs", name)
	}
	return ""
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
}

// shouldLogToStderr decides whether structured logs go to stderr. In "auto"
// mode they only do when debugging or when stderr is not a terminal, so a
// running grid is never drawn over.
func shouldLogToStderr(logCfg Config, level logrus.Level, interactive bool) bool {
	mode := logCfg.Format.StructuredToStderr
	if mode == "" {
		mode = "auto"
	}

	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		isDebug := os.Getenv("GRIDNAV_DEBUG") == "1" || level >= logrus.DebugLevel
		return isDebug || !interactive
	}
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
