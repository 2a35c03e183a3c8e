package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ozzus/team-fixtures/internal/application/service"
	"github.com/ozzus/team-fixtures/internal/config"
	"github.com/ozzus/team-fixtures/internal/infrastructures/footballdata"
	fdclient "github.com/ozzus/team-fixtures/internal/infrastructures/footballdata/http/client"
	"github.com/ozzus/team-fixtures/internal/infrastructures/tzdb"
	"github.com/ozzus/team-fixtures/internal/presentation/prompt"
	"github.com/ozzus/team-fixtures/internal/presentation/table"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level, cfg.Log.Encoding)
	defer func() {
		_ = log.Sync()
	}()

	if err := run(cfg, log); err != nil {
		log.Error("fixtures run failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sortOrder, err := service.ParseSortOrder(cfg.Fixtures.Sort)
	if err != nil {
		return err
	}

	catalog, err := tzdb.NewFromSystem(cfg.Fixtures.ZoneinfoDir)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: cfg.FootballData.Timeout}
	source := footballdata.NewSource(
		fdclient.NewClient(log, cfg.FootballData.BaseURL, httpClient),
		cfg.FootballData.TeamID,
	)

	noColor := cfg.Fixtures.NoColor || os.Getenv("NO_COLOR") != ""
	fixtures := service.NewFixturesService(
		log,
		catalog,
		prompt.NewSelector(log, os.Stdin, os.Stdout, cfg.Fixtures.MaxAttempts),
		source,
		table.NewPresenter(os.Stdout, noColor),
		service.Options{
			TeamName: cfg.FootballData.TeamName,
			Timezone: cfg.Fixtures.Timezone,
			APIKey:   strings.TrimSpace(cfg.FootballData.APIKey),
			Sort:     sortOrder,
		},
	)

	log.Debug("fixtures starting",
		zap.String("env", cfg.Env),
		zap.Int64("team_id", cfg.FootballData.TeamID),
		zap.String("team", cfg.FootballData.TeamName),
	)

	return fixtures.Run(ctx)
}

func setupLogger(level, encoding string) *zap.Logger {
	log, err := loggerConfig(level, encoding).Build()
	if err != nil {
		panic(err)
	}

	return log
}

// loggerConfig never records stack traces, even at error level.
func loggerConfig(level, encoding string) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLogLevel(level))
	cfg.DisableStacktrace = true
	if strings.EqualFold(strings.TrimSpace(encoding), "console") {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return cfg
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
