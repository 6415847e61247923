package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Options controls how the shared logger is configured
type Options struct {
	Level   string
	File    string
	Verbose bool
	Format  string // "text" (default) or "json"
}

var (
	base      = newDefaultLogger()
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	logFile   *os.File
)

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	// Nothing may write to the terminal while the UI owns it
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Setup configures the shared logger. It must run before the UI takes over the
// terminal. The returned function closes the log file.
func Setup(opts Options) (func() error, error) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	levelStr := "info"
	if env := os.Getenv("HNSEARCH_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if opts.Level != "" {
		levelStr = opts.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	if opts.Verbose {
		level = logrus.DebugLevel
	}
	base.SetLevel(level)

	switch opts.Format {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	closeFn := func() error { return nil }
	if opts.File == "" {
		base.SetOutput(io.Discard)
		return closeFn, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return closeFn, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return closeFn, fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	base.SetOutput(f)

	return func() error {
		loggersMu.Lock()
		defer loggersMu.Unlock()
		base.SetOutput(io.Discard)
		if logFile == nil {
			return nil
		}
		err := logFile.Close()
		logFile = nil
		return err
	}, nil
}

// NewLogger returns the logger for a component. Loggers are cached per component.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}
	logger := base.WithField("component", component)
	loggers[component] = logger
	return logger
}

// SetOutput redirects the shared logger, mainly for tests
func SetOutput(w io.Writer) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	base.SetOutput(w)
}

// SetLevel changes the level of the shared logger
func SetLevel(level logrus.Level) {
	base.SetLevel(level)
}
