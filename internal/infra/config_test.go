package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.StoreDriver != StoreDriverMemory {
		t.Errorf("store driver = %q, want memory", cfg.StoreDriver)
	}
	if cfg.MinDonation != 100 {
		t.Errorf("min donation = %d", cfg.MinDonation)
	}
	if !cfg.SeedDemoData {
		t.Error("seed demo data should default on")
	}
	if cfg.HTTPReadTimeout != 15*time.Second {
		t.Errorf("read timeout = %v", cfg.HTTPReadTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("missing JWT_SECRET must fail")
	}
}

func TestLoadConfigPostgresNeedsURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", StoreDriverPostgres)
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("postgres driver without DATABASE_URL must fail")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/donatehub")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL == "" {
		t.Fatal("database url not loaded")
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "cassandra")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("unknown store driver must fail")
	}
}

func TestLoadConfigParsesLists(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
}
