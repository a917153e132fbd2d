package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "IDEMPOTENCY_TTL", "WITHDRAWAL_LIMIT", "MAX_WITHDRAWALS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "debug" || cfg.RedisAddr != "" || cfg.RedisDB != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.IdempotencyTTL != 24*time.Hour {
		t.Fatalf("ttl=%s want=24h", cfg.IdempotencyTTL)
	}
	if cfg.WithdrawalLimit.String() != "500" || cfg.MaxWithdrawals != 3 {
		t.Fatalf("limit=%s max=%d", cfg.WithdrawalLimit, cfg.MaxWithdrawals)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("IDEMPOTENCY_TTL", "90m")
	t.Setenv("WITHDRAWAL_LIMIT", "250.50")
	t.Setenv("MAX_WITHDRAWALS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9090" || cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.IdempotencyTTL != 90*time.Minute || cfg.WithdrawalLimit.String() != "250.5" || cfg.MaxWithdrawals != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown gin mode", key: "GIN_MODE", value: "verbose"},
		{name: "redis db not a number", key: "REDIS_DB", value: "one"},
		{name: "ttl not a duration", key: "IDEMPOTENCY_TTL", value: "tomorrow"},
		{name: "ttl negative", key: "IDEMPOTENCY_TTL", value: "-1h"},
		{name: "limit not a number", key: "WITHDRAWAL_LIMIT", value: "lots"},
		{name: "limit zero", key: "WITHDRAWAL_LIMIT", value: "0"},
		{name: "max withdrawals negative", key: "MAX_WITHDRAWALS", value: "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("[%s] expected error for %s=%q", tt.name, tt.key, tt.value)
			}
		})
	}
}
