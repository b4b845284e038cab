package embedcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "semanticchunker:embedding:"

// RedisCache is an embedding cache backed by Redis, for sharing embeddings
// across processes.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisConfig provides configuration options for the Redis embedding cache.
type RedisConfig struct {
	// Address is either a redis:// / rediss:// URL or a plain host:port.
	Address  string
	Username string
	Password string
	Database int

	// Prefix namespaces cache keys. Defaults to "semanticchunker:embedding:".
	Prefix string

	// TTL expires entries after the given duration. 0 means no expiry.
	TTL time.Duration
}

// NewRedisCache creates a Redis-backed embedding cache and verifies the
// connection with a ping.
func NewRedisCache(ctx context.Context, config RedisConfig) (*RedisCache, error) {
	if config.Address == "" {
		return nil, errors.New("redis address is required")
	}

	var opts *redis.Options
	if strings.Contains(config.Address, "://") {
		parsed, err := redis.ParseURL(config.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: config.Address}
	}

	// Explicit config values override the URL
	if config.Username != "" {
		opts.Username = config.Username
	}
	if config.Password != "" {
		opts.Password = config.Password
	}
	if config.Database != 0 {
		opts.DB = config.Database
	}

	prefix := config.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{client: client, prefix: prefix, ttl: config.TTL}, nil
}

// Get retrieves the cached embedding for text, if present.
func (c *RedisCache) Get(ctx context.Context, text string) ([]float32, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+hashKey(text)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var embedding []float32
	if err := json.Unmarshal(data, &embedding); err != nil {
		return nil, false, fmt.Errorf("corrupt cached embedding: %w", err)
	}
	return embedding, true, nil
}

// Set stores the embedding for text.
func (c *RedisCache) Set(ctx context.Context, text string, embedding []float32) error {
	data, err := json.Marshal(embedding)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+hashKey(text), data, c.ttl).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
