package config

import (
	"testing"
	"time"
)

func TestLoadCacheConfigOverrides(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CACHE_KEY_STRATEGY", "method_route_query")
	t.Setenv("CACHE_PREFIX", "seatwise")
	t.Setenv("CACHE_MAX_BODY_BYTES", "2048")

	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Fatalf("expected cache enabled")
	}
	if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] || cfg.Methods["POST"] {
		t.Fatalf("methods parsed wrong: %v", cfg.Methods)
	}
	if cfg.TTL != 90*time.Second {
		t.Fatalf("expected 90s TTL, got %s", cfg.TTL)
	}
	if cfg.KeyStrategy != "method_route_query" || cfg.Prefix != "seatwise" {
		t.Fatalf("strategy/prefix not applied: %+v", cfg)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Fatalf("expected 2048 max body bytes, got %d", cfg.MaxBodyBytes)
	}
}

func TestLoadCacheConfigBadTTLFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "not-a-duration")
	if cfg := LoadCacheConfig(); cfg.TTL != time.Second {
		t.Fatalf("bad TTL must fall back to 1s, got %s", cfg.TTL)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 || cfg.RefillTokens != 1 {
		t.Fatalf("capacity/refill must clamp to 1: %+v", cfg)
	}
	if cfg.TTL != 10*time.Second { // 5 * refill interval
		t.Fatalf("TTL must clamp to five refill intervals, got %s", cfg.TTL)
	}
}

func TestLoadRateLimitConfigBurstOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "60")
	t.Setenv("RATE_LIMIT_BURST", "120")
	if cfg := LoadRateLimitConfig(); cfg.Capacity != 120 {
		t.Fatalf("burst must override capacity, got %d", cfg.Capacity)
	}
}
