package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Port    string
	GinMode string

	// RedisAddr selects the idempotency store. Empty keeps it in memory.
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	IdempotencyTTL time.Duration

	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("invalid GIN_MODE %q: want debug, release or test", cfg.GinMode)
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.IdempotencyTTL, err = time.ParseDuration(getEnv("IDEMPOTENCY_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("invalid IDEMPOTENCY_TTL: %w", err)
	}
	if cfg.IdempotencyTTL <= 0 {
		return Config{}, fmt.Errorf("invalid IDEMPOTENCY_TTL: must be positive")
	}
	if cfg.WithdrawalLimit, err = decimal.NewFromString(getEnv("WITHDRAWAL_LIMIT", "500")); err != nil {
		return Config{}, fmt.Errorf("invalid WITHDRAWAL_LIMIT: %w", err)
	}
	if !cfg.WithdrawalLimit.IsPositive() {
		return Config{}, fmt.Errorf("invalid WITHDRAWAL_LIMIT: must be positive")
	}
	if cfg.MaxWithdrawals, err = strconv.Atoi(getEnv("MAX_WITHDRAWALS", "3")); err != nil {
		return Config{}, fmt.Errorf("invalid MAX_WITHDRAWALS: %w", err)
	}
	if cfg.MaxWithdrawals < 0 {
		return Config{}, fmt.Errorf("invalid MAX_WITHDRAWALS: must not be negative")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
