package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected default addr, got %q", cfg.RedisAddr)
	}
	if cfg.RedisDB != 0 {
		t.Errorf("expected default db 0, got %d", cfg.RedisDB)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("REDIS_ADDR", "127.0.0.1:6390")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RedisAddr != "127.0.0.1:6390" {
		t.Errorf("expected env addr, got %q", cfg.RedisAddr)
	}
	if cfg.RedisDB != 2 {
		t.Errorf("expected db 2, got %d", cfg.RedisDB)
	}
}
