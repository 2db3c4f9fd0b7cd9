// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"errors"
	"os"
	"time"
)

// ErrNotFound is returned by Get when a key does not exist or has
// expired. Callers check it with errors.Is to tell "absent" apart from
// a backend fault; an empty stored value is still a hit.
var ErrNotFound = errors.New("cache: key not found")

// Cache abstracts a key/value store with per-entry expiration. Values
// travel as raw bytes; encoding is owned by the caller (see Through).
// Implementations must make individual Get/Set calls atomic but are not
// required to coordinate racing writers on the same key.
type Cache interface {
	// Get retrieves the value for key. Returns ErrNotFound if the key
	// does not exist or has expired. Never panics on a missing key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any existing entry. A
	// ttl <= 0 applies the implementation's default expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping verifies connectivity to the underlying backend.
	Ping(ctx context.Context) error

	// Close releases the backend connection.
	Close() error
}

// Enabled returns true unless FLIGHTCTL_CACHE explicitly disables
// caching ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("FLIGHTCTL_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}
