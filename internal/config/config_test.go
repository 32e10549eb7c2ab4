package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreBackend != StoreMemory {
		t.Fatalf("store backend = %q, want memory default", cfg.StoreBackend)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("session ttl = %v", cfg.SessionTTL)
	}
	if cfg.ImportWorkerCount != 4 {
		t.Fatalf("import workers = %d", cfg.ImportWorkerCount)
	}
}

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORE_BACKEND=postgres without DATABASE_URL")
	}
}

func TestLoad_ProdRequiresSessionSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for prod without SESSION_SECRET")
	}
}

func TestLoad_InvalidStoreBackend(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_BACKEND", "redis")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown STORE_BACKEND")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_CORSSplitting(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://liga.colegio.example, https://tv.colegio.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("origins = %v", cfg.CORSAllowedOrigins)
	}
}
