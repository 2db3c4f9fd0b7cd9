// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"sync"
	"time"
)

// memoryEntry is a stored value with its expiration deadline.
// A zero ExpireAt means no TTL.
type memoryEntry struct {
	Data     []byte
	ExpireAt time.Time
}

// Memory implements Cache with an in-process map and lazy expiry:
// expired entries are treated as absent on read and dropped then,
// not reaped by a background goroutine. It backs tests and runs where
// caching is disabled but the call path still wants a Cache handle.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	defaultTTL time.Duration

	// now is swappable so tests can step time instead of sleeping.
	now func() time.Time
}

// NewMemory returns an empty in-memory cache applying defaultExpMins
// to every Set without an explicit ttl.
func NewMemory(defaultExpMins int) *Memory {
	return &Memory{
		entries:    make(map[string]memoryEntry),
		defaultTTL: time.Duration(defaultExpMins) * time.Minute,
		now:        time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	if !e.ExpireAt.IsZero() && m.now().After(e.ExpireAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	return e.Data, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	e := memoryEntry{Data: value}
	if ttl > 0 {
		e.ExpireAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Ping(_ context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
