// Package log provides structured debug logging for hew.
// It wraps tea.LogToFile with structured fields (level, category, timestamp)
// and stays silent unless enabled via --debug or HEW_DEBUG.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatBuffer  Category = "buffer"  // Document mutations
	CatView    Category = "view"    // Cursor, scroll and search
	CatFile    Category = "file"    // Load and save
	CatConfig  Category = "config"  // Configuration loading
	CatWatcher Category = "watcher" // File watcher events
	CatUI      Category = "ui"      // Bubble Tea host
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	closer   io.Closer
	writer   io.Writer
	enabled  bool
	minLevel Level
}

var defaultLogger *Logger

// Init opens path through tea.LogToFile and makes it the global log sink.
// Returns a cleanup function to close the log file.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defaultLogger = &Logger{
		closer:   f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
	}
	return func() { _ = f.Close() }, nil
}

// SetOutput routes log entries to w. Used by tests.
func SetOutput(w io.Writer) {
	defaultLogger = &Logger{writer: w, enabled: w != nil, minLevel: LevelDebug}
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// EnabledFromEnv reports whether HEW_DEBUG asks for logging.
func EnabledFromEnv() bool {
	switch strings.ToLower(os.Getenv("HEW_DEBUG")) {
	case "", "0", "false", "no":
		return false
	default:
		return true
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	l := defaultLogger
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	// Format: 2026-10-14T10:45:00 [ERROR] [file] message key=value key2=value2
	var sb strings.Builder
	sb.WriteString(time.Now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&sb, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	// Orphan key with no value.
	if len(fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", fields[len(fields)-1])
	}
	sb.WriteByte('\n')

	_, _ = io.WriteString(l.writer, sb.String())
}
