package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Config defines the logging section of the moodctl config file.
type Config struct {
	// Level is the minimum level to output ("debug", "info", "warn", "error").
	// MOODCTL_LOG_LEVEL overrides it.
	Level string `mapstructure:"level"`
	// Format is "text" (default) or "json".
	Format string `mapstructure:"format"`
	// File, when set, receives a copy of every log line.
	File string `mapstructure:"file"`
	// Stderr is "auto" (default), "always" or "never". In auto mode logs only
	// reach stderr when it is not a terminal or the level is debug, so the
	// picker screen is not overdrawn.
	Stderr string `mapstructure:"stderr"`
}

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	current   Config
	stderr    io.Writer = os.Stderr
)

// Configure sets the configuration used by loggers created afterwards and
// drops any cached loggers.
func Configure(cfg Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	current = cfg
	loggers = make(map[string]*logrus.Entry)
}

// NewLogger returns the logger for a component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	entry := newLogger(current, stderr).WithField("component", component)
	loggers[component] = entry
	return entry
}

func newLogger(cfg Config, errOut io.Writer) *logrus.Logger {
	logger := logrus.New()

	levelStr := "warn"
	if env := os.Getenv("MOODCTL_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if cfg.Level != "" {
		levelStr = cfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	interactive := isTerminal(errOut)
	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: !interactive,
			FullTimestamp: true,
		})
	}

	var writers []io.Writer
	if cfg.File != "" {
		path := expandPath(cfg.File)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			logger.Warnf("Failed to create log directory for %s: %v", path, err)
		} else if file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			logger.Warnf("Failed to open log file %s: %v", path, err)
		} else {
			writers = append(writers, file)
		}
	}

	switch cfg.Stderr {
	case "always":
		writers = append(writers, errOut)
	case "never":
	default:
		if level >= logrus.DebugLevel || !interactive {
			writers = append(writers, errOut)
		}
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
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
