// Package rdb caches the serialized results of the extraction endpoint in
// Redis.
package rdb

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTTL  = 10 * time.Minute
	DefaultPort = 6379
	keyPrefix   = "vclause:extract:"
)

type Conf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	TTLSecs  int    `json:"ttlSecs"`
}

// ValidateAndDefaults sets the port and ttl if missing.
func (conf *Conf) ValidateAndDefaults() error {
	if conf.Host == "" {
		return errors.New("redis host not specified")
	}
	if conf.Port == 0 {
		conf.Port = DefaultPort
		log.Warn().Int("port", conf.Port).Msg("redis port not specified, using default")
	}
	if conf.TTLSecs == 0 {
		conf.TTLSecs = int(DefaultTTL.Seconds())
		log.Warn().Int("ttlSecs", conf.TTLSecs).Msg("redis ttl not specified, using default")
	}
	return nil
}

// Cache stores extraction results. A nil *Cache is valid and caches
// nothing.
type Cache struct {
	c   *redis.Client
	ttl time.Duration
}

func NewCache(conf *Conf) *Cache {
	return &Cache{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ttl: time.Duration(conf.TTLSecs) * time.Second,
	}
}

// Key returns the cache key of a request body extracted with the named
// tagset.
func Key(tagset string, body []byte) string {
	h := sha1.New()
	h.Write([]byte(tagset))
	h.Write([]byte{0})
	h.Write(body)
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached value and whether it was found.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	val, err := c.c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	return val, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, val []byte) error {
	if c == nil {
		return nil
	}

	if err := c.c.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.c.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.c.Close()
}
