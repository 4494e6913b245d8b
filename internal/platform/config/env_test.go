package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"ADREACH_TEST_PORT" envDefault:"123"`
	Timeout time.Duration `env:"ADREACH_TEST_TIMEOUT" envDefault:"2s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("expected default timeout 2s, got %s", cfg.Timeout)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ADREACH_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
