package logging

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	logger := newLogrus(LoadConfig(), os.Stderr, interactive)

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// newLogrus builds a logger from cfg. Output goes to stderr when the
// stderr mode asks for it; otherwise it is discarded.
func newLogrus(cfg Config, stderr io.Writer, interactive bool) *logrus.Logger {
	logger := logrus.New()

	levelStr := cfg.Level
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetReportCaller(cfg.ReportCaller)

	switch cfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: cfg.Format})
	}

	toStderr := false
	switch cfg.Format.StructuredToStderr {
	case "always":
		toStderr = true
	case "never":
		toStderr = false
	default:
		// auto: stay quiet in an interactive terminal unless debugging
		toStderr = level >= logrus.DebugLevel || !interactive
	}

	if toStderr {
		logger.SetOutput(stderr)
	} else {
		logger.SetOutput(io.Discard)
	}
	return logger
}
