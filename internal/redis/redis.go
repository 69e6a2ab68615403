package redis

import (
	"context"
	"errors"
	"time"

	"github.com/Kr0n4k/blog-project/internal/config"
	"github.com/Kr0n4k/blog-project/internal/logger"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("redis: key not found")

type Client struct {
	rdb *goredis.Client
}

// New connects to Redis using REDIS_URI when set, falling back to the
// discrete host/port/password/db parameters. A malformed URI is logged
// and replaced by the default connection parameters instead of failing
// startup; an unreachable server still fails startup, since sessions
// cannot work without the store.
func New(cfg config.Config) (*Client, error) {
	opts := optionsFromConfig(cfg)

	rdb := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("redis client connected", map[string]any{"addr": opts.Addr})

	return &Client{rdb: rdb}, nil
}

func optionsFromConfig(cfg config.Config) *goredis.Options {
	if cfg.RedisURI != "" {
		opts, err := goredis.ParseURL(cfg.RedisURI)
		if err == nil {
			return opts
		}
		logger.Error("invalid REDIS_URI, using default configuration", map[string]any{
			"error": err.Error(),
		})
	}

	return &goredis.Options{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a value, with an optional expiry. A zero ttl means no expiry.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Del(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

func (c *Client) Keys(ctx context.Context, pattern string) ([]string, error) {
	return c.rdb.Keys(ctx, pattern).Result()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
