// Package redis wraps go-redis with the hash-with-timestamp cache layout used by the repositories.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cachedAtField = "cached_at"

// Config holds the connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	TTL      time.Duration
}

// Client is a small cache facade over a go-redis client.
type Client struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// New creates a client. It does not dial until the first command.
func New(cfg Config) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,

		MaxRetries:      3,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
	})
	return NewFromClient(rdb, cfg.TTL)
}

// NewFromClient wraps an existing go-redis client.
func NewFromClient(rdb redis.UniversalClient, ttl time.Duration) *Client {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Client{client: rdb, ttl: ttl}
}

// Set stores value in field of the hash at key and refreshes the TTL of the whole hash.
func (c *Client) Set(ctx context.Context, key, field, value string) error {
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, field, value, cachedAtField, time.Now().Unix())
	pipe.Expire(ctx, key, c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns the value of field in the hash at key and whether it was present.
func (c *Client) Get(ctx context.Context, key, field string) (string, bool, error) {
	val, err := c.client.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Delete removes keys. Missing keys are not an error.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate %v: %w", keys, err)
	}
	return nil
}

// Ping checks connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.client.Close()
}
