// Package logging writes tbtui's structured logs to a file under the user
// cache directory. The terminal belongs to the TUI, so nothing is written to
// stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// Log files are named tbtui_<timestamp>_<pid>.log. Cleanup only ever
// touches names with this prefix and suffix.
const (
	filePrefix = "tbtui_"
	fileSuffix = ".log"
)

// Level is a slog level.
type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// ParseLevel reads a config log level. Empty means info and "warning" is
// accepted for warn.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return LevelInfo, nil
	case "warning":
		s = "warn"
	}
	var l Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

type Config struct {
	Level  Level
	LogDir string
	// MaxLogFiles and MaxLogAge bound what Cleanup keeps; zero disables
	// that bound.
	MaxLogFiles int
	MaxLogAge   time.Duration
	JSONFormat  bool
}

// DefaultLogDir is <user cache dir>/tbtui/logs, or .tbtui/logs when the
// cache dir is unknown.
func DefaultLogDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "tbtui", "logs")
	}
	return filepath.Join(".tbtui", "logs")
}

func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		LogDir:      DefaultLogDir(),
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
	}
}

// Logger writes to one log file for the life of the process.
type Logger struct {
	slog    *slog.Logger
	config  *Config
	logFile *os.File
	logPath string
	mu      sync.Mutex
}

// New opens a fresh log file in config.LogDir and prunes old ones.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := os.MkdirAll(config.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("%s%s_%d%s", filePrefix, time.Now().Format("20060102_150405"), os.Getpid(), fileSuffix)
	logPath := filepath.Join(config.LogDir, name)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	opts := &slog.HandlerOptions{Level: config.Level}
	var h slog.Handler = slog.NewTextHandler(f, opts)
	if config.JSONFormat {
		h = slog.NewJSONHandler(f, opts)
	}

	l := &Logger{slog: slog.New(h), config: config, logFile: f, logPath: logPath}
	if err := l.Cleanup(); err != nil {
		l.Warn("log cleanup failed", "error", err)
	}
	return l, nil
}

// NewNoop returns a logger that discards everything.
func NewNoop() *Logger {
	return &Logger{
		slog:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		config: &Config{Level: LevelInfo},
	}
}

func (l *Logger) LogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logPath
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile == nil {
		return nil
	}
	return l.logFile.Close()
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a logger sharing l's file with args attached to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:    l.slog.With(args...),
		config:  l.config,
		logFile: l.logFile,
		logPath: l.logPath,
	}
}

type logEntry struct {
	path    string
	modTime time.Time
}

// Cleanup removes log files beyond MaxLogFiles or older than MaxLogAge.
// The current log file is never removed.
func (l *Logger) Cleanup() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	dir := l.config.LogDir
	if dir == "" {
		return nil
	}
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logs []logEntry
	for _, e := range dirEntries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		if info, err := e.Info(); err == nil {
			logs = append(logs, logEntry{path: filepath.Join(dir, name), modTime: info.ModTime()})
		}
	}

	removed := 0
	for _, path := range expired(logs, l.logPath, l.config.MaxLogFiles, l.config.MaxLogAge, time.Now()) {
		if os.Remove(path) == nil {
			removed++
		}
	}
	if removed > 0 {
		l.slog.Debug("removed old log files", "count", removed)
	}
	return nil
}

// expired picks the logs to delete: everything past the newest keep files
// and everything older than maxAge, sparing current.
func expired(logs []logEntry, current string, keep int, maxAge time.Duration, now time.Time) []string {
	slices.SortFunc(logs, func(a, b logEntry) int { return b.modTime.Compare(a.modTime) })

	var out []string
	for i, lf := range logs {
		if lf.path == current {
			continue
		}
		tooMany := keep > 0 && i >= keep
		tooOld := maxAge > 0 && now.Sub(lf.modTime) > maxAge
		if tooMany || tooOld {
			out = append(out, lf.path)
		}
	}
	return out
}
