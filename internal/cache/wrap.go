// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/apex/log"
)

// Through runs compute with read-through caching under key. The cached
// bytes are JSON; the decode target T is fixed at the call site, which
// is what keeps float aggregates floats and integer counts integers
// across the round trip.
//
// Semantics:
//   - hit: decode and return, compute is not invoked;
//   - miss: invoke compute, store the result under key, return it;
//   - backend read fault: warn and fall through to compute — a cache
//     fault never breaks the underlying computation;
//   - compute error: returned as-is, nothing is stored;
//   - store fault: warn, the computed result is still returned.
//
// A ttl <= 0 applies the backend's default expiration. A nil Cache
// degrades to calling compute directly.
//
// Only wrap pure computations: a hit silently skips execution. The
// wrapper takes no locks, so two callers racing on a cold key may both
// compute; last store wins and both results are equal by purity.
func Through[T any](ctx context.Context, c Cache, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	defer timed(key)()

	if c == nil {
		return compute(ctx)
	}

	data, err := c.Get(ctx, key)
	if err == nil {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		// Undecodable entry. Treat as a miss and overwrite below.
		log.Warnf("discarding undecodable cache entry for key [%s]", key)
	} else if !errors.Is(err, ErrNotFound) {
		log.WithError(err).Warnf("cache read failed for key [%s], treating as miss", key)
	}

	result, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	data, err = json.Marshal(result)
	if err != nil {
		log.WithError(err).Warnf("failed to encode result for key [%s], not caching", key)
		return result, nil
	}

	if err := c.Set(ctx, key, data, ttl); err != nil {
		log.WithError(err).Warnf("failed to cache result for key [%s]", key)
	}

	return result, nil
}

// timed brackets an operation with STARTED/FINISHED log lines. Use as
// defer timed(name)().
func timed(name string) func() {
	log.Infof("STARTED [%s]", name)
	start := time.Now()
	return func() {
		log.Infof("FINISHED [%s] in %.6f seconds", name, time.Since(start).Seconds())
	}
}
