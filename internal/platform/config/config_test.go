package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Games int `env:"BRISKULA_TEST_GAMES" envDefault:"8"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Games != 8 {
		t.Fatalf("expected default of 8 games, got %d", cfg.Games)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BRISKULA_TEST_GAMES", "42")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Games != 42 {
		t.Fatalf("expected 42 games, got %d", cfg.Games)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BRISKULA_TEST_GAMES", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
