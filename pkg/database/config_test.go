package database

import (
	"testing"
	"time"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "trimsy",
		Password: "secret",
		DBName:   "trimsy",
		SSLMode:  "require",
	}

	want := "host=db.internal port=5433 user=trimsy password=secret dbname=trimsy sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestConnMaxLifetimeDefault(t *testing.T) {
	var cfg Config
	if got := cfg.ConnMaxLifetime(); got != 5*time.Minute {
		t.Errorf("ConnMaxLifetime() = %v, want 5m default", got)
	}

	cfg.ConnMaxLifetimeMin = 30
	if got := cfg.ConnMaxLifetime(); got != 30*time.Minute {
		t.Errorf("ConnMaxLifetime() = %v, want 30m", got)
	}
}
