// Package cache is a fail-safe Redis wrapper: connectivity errors
// degrade to cache misses so listing and profile reads never depend on
// redis being up. A nil *Client is a valid no-op cache, which lets
// services run cache-less in tests.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client with JSON encoding and fail-safe semantics.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Key builds a namespaced cache key such as "home:6".
func Key(namespace string, id uint) string {
	return fmt.Sprintf("%s:%d", namespace, id)
}

// GetJSON loads key into dest and reports whether a usable entry was
// found. Misses, redis errors, and undecodable payloads all read as
// cache misses.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON marshals value and stores it under key with a TTL. Failures
// are ignored; the next read falls through to the database.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, payload, ttl)
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, key)
}
