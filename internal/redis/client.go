package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/eaglebank/bankingsim/internal/config"
	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// Client is the shared connection pool behind the Redis-backed stores.
type Client struct {
	*redis.Client
	addr string
}

// NewClient connects to the Redis server named by cfg and checks it answers a
// PING before ctx or the connect timeout runs out.
func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("redis address is not configured")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  connectTimeout,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s db %d unreachable: %w", cfg.RedisAddr, cfg.RedisDB, err)
	}

	return &Client{Client: rdb, addr: cfg.RedisAddr}, nil
}

func (c *Client) Addr() string { return c.addr }
