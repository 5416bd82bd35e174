package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLogLevel(tt.input)
			if got != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSetupLoggerHonorsConsoleLevel(t *testing.T) {
	logger := SetupLogger("", slog.LevelError, 4, 0)

	ctx := context.Background()
	if logger.Enabled(ctx, slog.LevelWarn) {
		t.Error("warn should be filtered when the console level is error")
	}
	if !logger.Enabled(ctx, slog.LevelError) {
		t.Error("error should pass at the error console level")
	}
}

func TestInitLoggerAppliesConfiguredLevel(t *testing.T) {
	saved := DefaultLoggingService
	savedDefault := slog.Default()
	defer func() {
		DefaultLoggingService = saved
		slog.SetDefault(savedDefault)
	}()

	InitLogger("", "error", 4, 0)

	if DefaultLoggingService.Logger == nil {
		t.Fatal("InitLogger did not set the global logger")
	}
	if DefaultLoggingService.Logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be filtered after InitLogger with LOG_LEVEL=error")
	}
}
