package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("a missing file must not be an error: %v", err)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("expected yahoo default provider, got %q", cfg.DataSource.Provider)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Server.Addr)
	}
	if len(cfg.Basket) != 4 || cfg.Basket[0] != "SPY" {
		t.Errorf("expected the default basket starting with SPY, got %v", cfg.Basket)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
data_source:
  provider: mock
  lookback_days: 90
server:
  addr: ":9999"
basket: [SPY, QQQ]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.Provider != "mock" {
		t.Errorf("expected mock provider, got %q", cfg.DataSource.Provider)
	}
	if cfg.DataSource.Lookback != 90 {
		t.Errorf("expected lookback 90, got %d", cfg.DataSource.Lookback)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("expected addr :9999, got %q", cfg.Server.Addr)
	}
	if len(cfg.Basket) != 2 {
		t.Errorf("expected a 2-symbol basket, got %v", cfg.Basket)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PULSE_PROVIDER", "mock")
	t.Setenv("PULSE_ADDR", ":7000")
	t.Setenv("PULSE_REDIS_ADDR", "localhost:6379")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataSource.Provider != "mock" {
		t.Errorf("env override for provider ignored, got %q", cfg.DataSource.Provider)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("env override for addr ignored, got %q", cfg.Server.Addr)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "localhost:6379" {
		t.Error("setting the redis addr via env must enable redis")
	}
}

func TestValidate_Rejections(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	cfg.DataSource.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an unknown provider")
	}
	cfg.DataSource.Provider = "yahoo"

	cfg.DataSource.Lookback = 5
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a tiny lookback")
	}
	cfg.DataSource.Lookback = 120

	cfg.Redis.Enabled = true
	cfg.Redis.Addr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for enabled redis without an addr")
	}
}
