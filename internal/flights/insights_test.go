// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package flights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/flightctl/internal/cache"
)

// spySource counts how often the dataset actually gets touched, so the
// tests can tell a cache hit from a recomputation.
type spySource struct {
	Source
	touches *int
}

func newSpySource(t *testing.T) spySource {
	t.Helper()
	touches := 0
	return spySource{Source: loadTestSource(t), touches: &touches}
}

func (s spySource) ByAirline(airline string) Source {
	*s.touches++
	return s.Source.ByAirline(airline)
}

func (s spySource) ByOriginAirport(airport string) Source {
	*s.touches++
	return s.Source.ByOriginAirport(airport)
}

func TestInsights_AvgDepDelayPerAirline(t *testing.T) {
	ctx := context.Background()
	in := NewInsights(loadTestSource(t), nil)

	tests := []struct {
		name    string
		airline string
		months  []int
		want    float64
	}{
		{name: "whole year", airline: "VX", want: 50},
		{name: "summer months", airline: "VX", months: []int{6, 7, 8}, want: 30},
		{name: "december", airline: "VX", months: []int{12}, want: 90},
		{name: "duplicate months collapse", airline: "VX", months: []int{6, 6, 7, 8}, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := in.AvgDepDelayPerAirline(ctx, tt.airline, tt.months)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestInsights_MaxDepDelayPerAirline(t *testing.T) {
	ctx := context.Background()
	in := NewInsights(loadTestSource(t), nil)

	max, err := in.MaxDepDelayPerAirline(ctx, "VX", nil)
	require.NoError(t, err)
	assert.Equal(t, 90.0, max)

	max, err = in.MaxDepDelayPerAirline(ctx, "VX", []int{6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, 50.0, max)
}

func TestInsights_TotalFlightsPerOriginAirport(t *testing.T) {
	ctx := context.Background()
	in := NewInsights(loadTestSource(t), nil)

	total, err := in.TotalFlightsPerOriginAirport(ctx, "SFO")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestInsights_Validation(t *testing.T) {
	ctx := context.Background()
	in := NewInsights(loadTestSource(t), nil)

	_, err := in.AvgDepDelayPerAirline(ctx, "", nil)
	assert.ErrorContains(t, err, "airline name cannot be empty")

	_, err = in.AvgDepDelayPerAirline(ctx, "   ", nil)
	assert.ErrorContains(t, err, "airline name cannot be empty")

	_, err = in.MaxDepDelayPerAirline(ctx, "VX", []int{0})
	assert.ErrorContains(t, err, "months must be integers between 1 and 12")

	_, err = in.AvgDepDelayPerAirline(ctx, "VX", []int{13})
	assert.ErrorContains(t, err, "months must be integers between 1 and 12")

	_, err = in.TotalFlightsPerOriginAirport(ctx, "")
	assert.ErrorContains(t, err, "airport name cannot be empty")
}

func TestInsights_NoData(t *testing.T) {
	ctx := context.Background()
	in := NewInsights(loadTestSource(t), nil)

	_, err := in.AvgDepDelayPerAirline(ctx, "ZZ", nil)
	assert.ErrorContains(t, err, "no data found for airline: ZZ")

	_, err = in.AvgDepDelayPerAirline(ctx, "WN", []int{2})
	assert.ErrorContains(t, err, "no data found for airline: WN with months: [2]")

	_, err = in.TotalFlightsPerOriginAirport(ctx, "XXX")
	assert.ErrorContains(t, err, "no data found for airport: XXX")
}

func TestInsights_SecondCallIsAHit(t *testing.T) {
	ctx := context.Background()
	src := newSpySource(t)
	in := NewInsights(src, cache.NewMemory(1))

	avg1, err := in.AvgDepDelayPerAirline(ctx, "VX", []int{6, 7, 8})
	require.NoError(t, err)
	assert.InDelta(t, 30.0, avg1, 1e-9)

	avg2, err := in.AvgDepDelayPerAirline(ctx, "VX", []int{6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, avg1, avg2)

	assert.Equal(t, 1, *src.touches, "second call must come from the cache")
}

func TestInsights_MonthOrderIsADistinctKey(t *testing.T) {
	ctx := context.Background()
	src := newSpySource(t)
	in := NewInsights(src, cache.NewMemory(1))

	avg1, err := in.AvgDepDelayPerAirline(ctx, "VX", []int{6, 7, 8})
	require.NoError(t, err)

	avg2, err := in.AvgDepDelayPerAirline(ctx, "VX", []int{8, 6, 7})
	require.NoError(t, err)

	assert.Equal(t, avg1, avg2, "same logical result either way")
	assert.Equal(t, 2, *src.touches, "reordered months key differently and recompute")
}

func TestInsights_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	src := newSpySource(t)
	in := NewInsights(src, cache.NewMemory(1))

	_, err := in.AvgDepDelayPerAirline(ctx, "ZZ", nil)
	require.Error(t, err)

	_, err = in.AvgDepDelayPerAirline(ctx, "ZZ", nil)
	require.Error(t, err)

	assert.Equal(t, 2, *src.touches, "failures must recompute, not hit a poisoned entry")
}

func TestInsights_DistinctOpsDistinctEntries(t *testing.T) {
	ctx := context.Background()
	in := NewInsights(loadTestSource(t), cache.NewMemory(1))

	avg, err := in.AvgDepDelayPerAirline(ctx, "VX", []int{12})
	require.NoError(t, err)

	max, err := in.MaxDepDelayPerAirline(ctx, "VX", []int{12})
	require.NoError(t, err)

	// Same arguments, different operations: both resolve independently.
	assert.Equal(t, 90.0, avg)
	assert.Equal(t, 90.0, max)
}
