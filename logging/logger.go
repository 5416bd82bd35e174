// Package logging configures slog for the service: console text output plus
// a weekly rotating JSON log file with retention cleanup.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RotatingLogger writes to one log file per ISO week and prunes files older
// than the retention period.
type RotatingLogger struct {
	logDir      string
	retention   time.Duration
	maxFileSize int64
	mu          sync.Mutex
	currentFile *os.File
	currentWeek string
	currentSize int64
}

// NewRotatingLogger creates a rotating logger writing to logDir.
func NewRotatingLogger(logDir string, retentionWeeks int, maxFileSize int64) *RotatingLogger {
	return &RotatingLogger{
		logDir:      logDir,
		retention:   time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		maxFileSize: maxFileSize,
	}
}

// getWeekKey returns the week key in YYYY-Www format (ISO week)
func getWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Write appends to the current week's log file, rotating on week change or
// when the size cap is hit.
func (rl *RotatingLogger) Write(p []byte) (int, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	week := getWeekKey(time.Now())
	if rl.currentFile == nil || rl.currentWeek != week ||
		(rl.maxFileSize > 0 && rl.currentSize+int64(len(p)) > rl.maxFileSize) {
		if err := rl.rotate(week); err != nil {
			return 0, err
		}
	}

	n, err := rl.currentFile.Write(p)
	rl.currentSize += int64(n)
	return n, err
}

// rotate opens the log file for the target week (caller holds the lock).
func (rl *RotatingLogger) rotate(week string) error {
	if rl.currentFile != nil {
		if err := rl.currentFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}

	name := fmt.Sprintf("app-%s.log", week)
	if rl.maxFileSize > 0 && rl.currentWeek == week {
		// Size rotation within the same week gets a timestamp suffix.
		name = fmt.Sprintf("app-%s_%d.log", week, time.Now().Unix())
	}

	logPath := filepath.Join(rl.logDir, name)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	rl.currentFile = file
	rl.currentWeek = week
	rl.currentSize = 0
	if info, err := os.Stat(logPath); err == nil {
		rl.currentSize = info.Size()
	}
	return nil
}

// CleanupOldLogs removes log files older than the retention period.
func (rl *RotatingLogger) CleanupOldLogs() error {
	entries, err := os.ReadDir(rl.logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	cutoff := time.Now().Add(-rl.retention)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "app-") || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(rl.logDir, entry.Name()))
		}
	}
	return nil
}

// Close closes the current log file.
func (rl *RotatingLogger) Close() error {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.currentFile != nil {
		err := rl.currentFile.Close()
		rl.currentFile = nil
		return err
	}
	return nil
}

// SetupLogger configures slog to log to both console (text) and a rotating
// file (JSON). The console handler filters at the given level while the file
// keeps everything down to debug. If the log directory cannot be created,
// console-only logging is used so the service still starts.
func SetupLogger(logDir string, level slog.Level, retentionWeeks int, maxFileSize int64) *slog.Logger {
	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})

	if logDir == "" {
		return slog.New(consoleHandler)
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger := slog.New(consoleHandler)
		logger.Error("Failed to create logs directory", "error", err)
		return logger
	}

	rotating := NewRotatingLogger(logDir, retentionWeeks, maxFileSize)

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := rotating.CleanupOldLogs(); err != nil {
				slog.Warn("Failed to cleanup old logs", "error", err)
			}
		}
	}()

	fileHandler := slog.NewJSONHandler(rotating, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(&multiHandler{handlers: []slog.Handler{consoleHandler, fileHandler}})
}

// multiHandler implements slog.Handler to write to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
