// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache is the caching core: a backend-agnostic key/value
// contract with expiration, a Redis-backed implementation, an in-memory
// implementation for tests and cache-disabled runs, deterministic cache
// key derivation, and a generic read-through wrapper that short-circuits
// recomputation of expensive aggregations on a hit.
package cache
