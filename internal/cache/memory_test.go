// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets expiration tests step time instead of sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockedMemory(defaultExpMins int) (*Memory, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	m := NewMemory(defaultExpMins)
	m.now = clock.now
	return m, clock
}

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m, _ := newClockedMemory(1)

	require.NoError(t, m.Set(ctx, "k", []byte(`30.5`), 0))

	v, err := m.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`30.5`), v)
}

func TestMemory_MissingKey(t *testing.T) {
	m, _ := newClockedMemory(1)

	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_EmptyValueIsStillAHit(t *testing.T) {
	ctx := context.Background()
	m, _ := newClockedMemory(1)

	require.NoError(t, m.Set(ctx, "k", []byte{}, 0))

	v, err := m.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Empty(t, v)
}

func TestMemory_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	m, clock := newClockedMemory(1)

	require.NoError(t, m.Set(ctx, "k", []byte(`1`), 0))

	clock.advance(59 * time.Second)
	_, err := m.Get(ctx, "k")
	assert.NoError(t, err, "entry should survive inside the TTL window")

	clock.advance(2 * time.Second)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound, "entry must be absent once expired")
}

func TestMemory_ExplicitTTLOverridesDefault(t *testing.T) {
	ctx := context.Background()
	m, clock := newClockedMemory(1)

	require.NoError(t, m.Set(ctx, "k", []byte(`1`), 5*time.Minute))

	clock.advance(2 * time.Minute)
	_, err := m.Get(ctx, "k")
	assert.NoError(t, err)
}

func TestMemory_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	m, _ := newClockedMemory(1)

	require.NoError(t, m.Set(ctx, "k", []byte(`old`), 0))
	require.NoError(t, m.Set(ctx, "k", []byte(`new`), 0))

	v, err := m.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`new`), v)
}

func TestMemory_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	m, _ := newClockedMemory(1)

	require.NoError(t, m.Set(ctx, "k", []byte(`1`), 0))
	assert.NoError(t, m.Delete(ctx, "k"))
	assert.NoError(t, m.Delete(ctx, "k"))

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}
