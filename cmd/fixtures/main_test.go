package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: " INFO ", want: zapcore.InfoLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "warn", want: zapcore.WarnLevel},
		{in: "", want: zapcore.WarnLevel},
		{in: "verbose", want: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Fatalf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupLogger_Encodings(t *testing.T) {
	for _, enc := range []string{"console", "json"} {
		log := setupLogger("debug", enc)
		if !log.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug enabled for %s encoding", enc)
		}
	}
}

func TestLoggerConfig_ErrorHasNoStacktrace(t *testing.T) {
	for _, enc := range []string{"console", "json"} {
		t.Run(enc, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fixtures.log")

			cfg := loggerConfig("warn", enc)
			if !cfg.DisableStacktrace {
				t.Fatal("expected stack traces to be disabled")
			}
			cfg.OutputPaths = []string{path}
			cfg.ErrorOutputPaths = []string{path}

			log, err := cfg.Build()
			if err != nil {
				t.Fatalf("build logger: %v", err)
			}
			log.Error("fixtures run failed", zap.Error(errors.New("prompt.Select: input closed")))
			_ = log.Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			out := string(data)
			if !strings.Contains(out, "fixtures run failed") {
				t.Fatalf("expected error entry, got %q", out)
			}
			if strings.Contains(out, "stacktrace") || strings.Contains(out, "testing.tRunner") {
				t.Fatalf("expected no stack trace, got %q", out)
			}
		})
	}
}
