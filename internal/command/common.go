// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/flightctl/internal/cache"
	"github.com/staranto/flightctl/internal/config"
	"github.com/staranto/flightctl/internal/flights"
	"github.com/staranto/flightctl/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If
// missing or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	if m, ok := cmd.Root().Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewCache builds the process-wide cache handle. Redis connection
// parameters and the global expiration come from config/env. A Redis
// connection failure is returned to the caller and is fatal: without
// the cache this tool is pointless. When FLIGHTCTL_CACHE disables
// caching, an in-memory stand-in keeps the call path identical.
func NewCache(ctx context.Context) (cache.Cache, error) {
	exp, _ := config.GetInt("cache.exp", 60)

	if !cache.Enabled() {
		log.Debug("caching disabled, using in-memory store")
		return cache.NewMemory(exp), nil
	}

	host, _ := config.GetString("redis.host", "localhost")
	port, _ := config.GetInt("redis.port", 6379)
	db, _ := config.GetInt("redis.db", 0)

	return cache.NewRedis(ctx, host, port, db, exp)
}

// NewInsights wires the dataset behind --csv to a fresh cache handle.
// The returned closer tears down the cache connection.
func NewInsights(ctx context.Context, cmd *cli.Command) (*flights.Insights, func(), error) {
	c, err := NewCache(ctx)
	if err != nil {
		return nil, nil, err
	}

	src, err := flights.FromCSV(cmd.String("csv"))
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	closer := func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("failed to close cache connection")
		}
	}

	return flights.NewInsights(src, c), closer, nil
}

// ParseMonths turns a --months spec like "6,7,8" into month numbers.
// An empty spec means no narrowing. Range validation belongs to the
// insights layer; this only rejects non-numbers.
func ParseMonths(spec string) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	parts := strings.Split(spec, ",")
	months := make([]int, 0, len(parts))
	for _, p := range parts {
		m, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid month %q in --months", p)
		}
		months = append(months, m)
	}
	return months, nil
}
