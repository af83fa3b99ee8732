package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Logger provides structured debug logging for slidemenu components.
// All logs are written to a session-specific file in ~/.slidemenu/logs/
//
// The terminal belongs to the TUI while it runs, so nothing is written to
// stdout. Entries below the configured level are dropped.
type Logger struct {
	sessionID string
	component string
	file      *os.File
	logger    *log.Logger
	mu        sync.Mutex
	logPath   string
	closeOnce sync.Once
}

var (
	// Global session ID for the current execution
	sessionID     string
	sessionIDOnce sync.Once

	// logDir is the directory where log files are stored
	logDir string

	// initOnce ensures directory initialization happens once
	initOnce sync.Once

	// initErr stores any error from directory initialization
	initErr error

	// defaultLevel applies to new loggers; SetDefaultLevel also pushes it to
	// every logger already registered
	defaultLevel   = log.InfoLevel
	defaultLevelMu sync.Mutex
	registered     []*Logger
)

// Log levels re-exported so callers need not import charmbracelet/log.
const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
)

// getSessionID returns or creates the session ID for this execution
func getSessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// initLogDirectory ensures the log directory exists
func initLogDirectory() error {
	initOnce.Do(func() {
		if logDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				initErr = fmt.Errorf("failed to get home directory: %w", err)
				return
			}
			logDir = filepath.Join(homeDir, ".slidemenu", "logs")
		}

		if err := os.MkdirAll(logDir, 0750); err != nil {
			initErr = fmt.Errorf("failed to create log directory: %w", err)
			return
		}
	})
	return initErr
}

// SetDefaultLevel sets the level of every component logger, including those
// created during package init before flags were parsed.
func SetDefaultLevel(level log.Level) {
	defaultLevelMu.Lock()
	defaultLevel = level
	loggers := append([]*Logger(nil), registered...)
	defaultLevelMu.Unlock()

	for _, l := range loggers {
		l.SetLevel(level)
	}
}

func register(l *Logger) *Logger {
	defaultLevelMu.Lock()
	defer defaultLevelMu.Unlock()
	registered = append(registered, l)
	return l
}

func getDefaultLevel() log.Level {
	defaultLevelMu.Lock()
	defer defaultLevelMu.Unlock()
	return defaultLevel
}

// NewLogger creates a new logger for a specific component.
// The logger writes to ~/.slidemenu/logs/<session-id>-slidemenu.log
//
// If the log directory cannot be created or the log file cannot be opened,
// it returns a fallback logger that writes to stderr along with the error.
// Callers can check the error to detect fallback mode and log warnings.
func NewLogger(component string) (*Logger, error) {
	logPath, err := SessionLogPath()
	if err != nil {
		return newFallbackLogger(component, err), err
	}

	// Append mode: every component of a session shares the file
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return newFallbackLogger(component, err), err
	}

	return register(&Logger{
		sessionID: getSessionID(),
		component: component,
		file:      file,
		logger:    newCharmLogger(file, component),
		logPath:   logPath,
	}), nil
}

// newFallbackLogger creates a logger that writes to stderr when file logging fails
func newFallbackLogger(component string, err error) *Logger {
	logger := newCharmLogger(os.Stderr, component)
	logger.Warn("failed to initialize file logging, falling back to stderr", "err", err)

	return register(&Logger{
		sessionID: getSessionID(),
		component: component,
		logger:    logger,
	})
}

func newCharmLogger(w io.Writer, component string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Level:           getDefaultLevel(),
		Prefix:          component,
	})
}

// SetLevel changes the minimum level written by this logger.
func (l *Logger) SetLevel(level log.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetLevel(level)
}

// Debugf logs a debug-level message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Debugf(format, v...)
}

// Infof logs an info-level message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Infof(format, v...)
}

// Warnf logs a warning-level message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Warnf(format, v...)
}

// Errorf logs an error-level message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Errorf(format, v...)
}

// With returns a child logger that appends key/value pairs to every entry.
// The child shares the parent's file and must not be closed separately.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		sessionID: l.sessionID,
		component: l.component,
		logger:    l.logger.With(keyvals...),
		logPath:   l.logPath,
	}
}

// Close closes the log file. Safe to call multiple times.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}

// SessionLogPath returns the file every logger of this session writes to,
// creating the log directory if needed.
func SessionLogPath() (string, error) {
	if err := initLogDirectory(); err != nil {
		return "", err
	}
	return filepath.Join(logDir, fmt.Sprintf("%s-slidemenu.log", getSessionID())), nil
}

// Since formats the elapsed time since start for log lines.
func Since(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
