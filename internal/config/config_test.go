package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.FootballData.TeamID != 81 || cfg.FootballData.TeamName != "FC Barcelona" {
		t.Fatalf("unexpected tracked team: %d %q", cfg.FootballData.TeamID, cfg.FootballData.TeamName)
	}
	if cfg.FootballData.BaseURL != "https://api.football-data.org" {
		t.Fatalf("unexpected base url: %q", cfg.FootballData.BaseURL)
	}
	if cfg.Fixtures.Sort != "lexical" {
		t.Fatalf("expected lexical sort by default, got %q", cfg.Fixtures.Sort)
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("FOOTBALL_DATA_TEAM_ID", "86")
	t.Setenv("FOOTBALL_DATA_TEAM_NAME", "Real Madrid CF")
	t.Setenv("FOOTBALL_DATA_TIMEOUT", "3s")
	t.Setenv("FIXTURES_MAX_ATTEMPTS", "5")

	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.FootballData.TeamID != 86 || cfg.FootballData.TeamName != "Real Madrid CF" {
		t.Fatalf("unexpected tracked team: %d %q", cfg.FootballData.TeamID, cfg.FootballData.TeamName)
	}
	if cfg.FootballData.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.FootballData.Timeout)
	}
	if cfg.Fixtures.MaxAttempts != 5 {
		t.Fatalf("expected 5 attempts, got %d", cfg.Fixtures.MaxAttempts)
	}
}

func TestMustLoadByPath_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	yaml := "log:\n  level: debug\nfixtures:\n  timezone: Europe/Madrid\n  sort: chronological\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := MustLoadByPath(path)
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Log.Level)
	}
	if cfg.Fixtures.Timezone != "Europe/Madrid" || cfg.Fixtures.Sort != "chronological" {
		t.Fatalf("unexpected fixtures config: %+v", cfg.Fixtures)
	}
	if cfg.FootballData.TeamName != "FC Barcelona" {
		t.Fatalf("expected default team name, got %q", cfg.FootballData.TeamName)
	}
}

func TestMustLoadByPath_MissingFilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing config file")
		}
	}()
	MustLoadByPath(filepath.Join(t.TempDir(), "absent.yaml"))
}
