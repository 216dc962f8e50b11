package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	DBPath  string `env:"TEST_DB_PATH" envDefault:"data/test.db"`
	Matches int    `env:"TEST_MATCHES" envDefault:"3"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DBPath != "data/test.db" || cfg.Matches != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TEST_DB_PATH", "unprefixed.db")
	t.Setenv("ASTROKIT_TEST_DB_PATH", "prefixed.db")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DBPath != "prefixed.db" {
		t.Fatalf("expected prefixed value, got %q", cfg.DBPath)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ASTROKIT_TEST_MATCHES", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
