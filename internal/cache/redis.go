// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
	goredis "github.com/redis/go-redis/v9"
)

// Redis implements Cache against a Redis server, leaning on Redis'
// native per-key expiration. One instance holds one client for the
// life of the process; construct it once at startup and pass it by
// handle into the wrapped operations.
type Redis struct {
	client     *goredis.Client
	defaultTTL time.Duration
}

// NewRedis connects to Redis and verifies the connection with a PING.
// A failed connection is returned as an error and is meant to be fatal
// to the caller: the whole point of this tool is the cache, so there is
// no degraded just-compute mode behind a dead backend.
//
// defaultExpMins is the uniform expiration, in minutes, applied to
// every Set that does not carry its own ttl.
func NewRedis(ctx context.Context, host string, port, db, defaultExpMins int) (*Redis, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port),
		DB:   db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s:%d: %w", host, port, err)
	}
	log.Info("Successfully connected to Redis!")

	return &Redis{
		client:     client,
		defaultTTL: time.Duration(defaultExpMins) * time.Minute,
	}, nil
}

// Get returns the stored bytes for key, or ErrNotFound on a miss.
// Backend faults are returned as-is; the read-through wrapper degrades
// them to a miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		log.Infof("no entry found for key [%s]", key)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key [%s]: %w", key, err)
	}

	log.Infof("cache hit for key [%s]", key)
	return value, nil
}

// Set stores value under key. A ttl <= 0 applies the configured
// default, which is how every caller in this repo uses it — one global
// TTL policy, not per-key tuning.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key [%s]: %w", key, err)
	}

	log.Infof("stored key [%s] with expiration of %g minutes", key, ttl.Minutes())
	return nil
}

// Delete removes key. Redis DEL of an absent key is a no-op, which
// gives us idempotency for free.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key [%s]: %w", key, err)
	}
	return nil
}

// Flush removes every key in the configured database.
func (r *Redis) Flush(ctx context.Context) error {
	if err := r.client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush redis: %w", err)
	}
	log.Info("cleared all keys from Redis")
	return nil
}

// Ping verifies the connection is still alive.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close tears down the client connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
