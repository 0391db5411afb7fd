package config

import (
	"testing"

	"github.com/gourmet-express/api/models"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES", "CORS_ALLOW_ORIGINS", "DATABASE_DSN", "ENVIRONMENT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.AccessTokenExpireMinutes != 60 {
		t.Fatalf("expected default ttl 60, got %d", cfg.AccessTokenExpireMinutes)
	}
	if cfg.Environment != "local" {
		t.Fatalf("expected default environment local, got %q", cfg.Environment)
	}
	if len(cfg.CORSAllowOrigins) != 1 || cfg.CORSAllowOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors default, got %v", cfg.CORSAllowOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.AccessTokenExpireMinutes != 15 {
		t.Fatalf("expected ttl 15, got %d", cfg.AccessTokenExpireMinutes)
	}
	if len(cfg.CORSAllowOrigins) != 2 {
		t.Fatalf("expected 2 cors origins, got %v", cfg.CORSAllowOrigins)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "not-a-number")
	if cfg := Load(); cfg.AccessTokenExpireMinutes != 60 {
		t.Fatalf("expected fallback ttl for unparsable value, got %d", cfg.AccessTokenExpireMinutes)
	}

	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "-5")
	if cfg := Load(); cfg.AccessTokenExpireMinutes != 60 {
		t.Fatalf("expected fallback ttl for negative value, got %d", cfg.AccessTokenExpireMinutes)
	}
}

func TestInitDBSeedsCatalogOnce(t *testing.T) {
	cfg := Config{DatabaseDSN: "file:initdb_test?mode=memory&cache=shared"}
	db, err := InitDB(cfg)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	var restaurants int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if restaurants != 3 {
		t.Fatalf("expected 3 seeded restaurants, got %d", restaurants)
	}

	var items int64
	if err := db.Model(&models.MenuItem{}).Count(&items).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if items != 6 {
		t.Fatalf("expected 6 seeded menu items, got %d", items)
	}

	// Seeding again is a no-op.
	if err := Seed(db); err != nil {
		t.Fatalf("re-seed failed: %v", err)
	}
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if restaurants != 3 {
		t.Fatalf("seed must be idempotent, got %d restaurants", restaurants)
	}
}
