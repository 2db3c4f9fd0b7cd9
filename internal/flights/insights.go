// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package flights

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/staranto/flightctl/internal/cache"
)

// Insights answers the analytical queries over a Source and caches the
// results through the cache core. The cache may be nil, in which case
// every call computes. Queries are pure over an immutable dataset,
// which is what makes a silent cache hit safe.
type Insights struct {
	src Source
	c   cache.Cache
}

// NewInsights composes a Source with an optional cache handle. This is
// the explicit decorator step: the Source itself knows nothing about
// caching.
func NewInsights(src Source, c cache.Cache) *Insights {
	return &Insights{src: src, c: c}
}

// AvgDepDelayPerAirline is the average departure delay in minutes for
// an airline, over the whole year or narrowed to the given months.
// Only flights that actually left late count toward the average.
func (in *Insights) AvgDepDelayPerAirline(ctx context.Context, airline string, months []int) (float64, error) {
	if err := validateAirline(airline); err != nil {
		return 0, err
	}
	if err := validateMonths(months); err != nil {
		return 0, err
	}

	key := cache.Key("Insights.AvgDepDelayPerAirline", keyArgs(airline, months)...)
	return cache.Through(ctx, in.c, key, 0, func(ctx context.Context) (float64, error) {
		src, err := in.narrow(airline, months)
		if err != nil {
			return 0, err
		}
		return src.PositiveDelays().Mean(AttrDepartureDelay)
	})
}

// MaxDepDelayPerAirline is the worst departure delay in minutes for an
// airline, over the whole year or narrowed to the given months.
func (in *Insights) MaxDepDelayPerAirline(ctx context.Context, airline string, months []int) (float64, error) {
	if err := validateAirline(airline); err != nil {
		return 0, err
	}
	if err := validateMonths(months); err != nil {
		return 0, err
	}

	key := cache.Key("Insights.MaxDepDelayPerAirline", keyArgs(airline, months)...)
	return cache.Through(ctx, in.c, key, 0, func(ctx context.Context) (float64, error) {
		src, err := in.narrow(airline, months)
		if err != nil {
			return 0, err
		}
		return src.PositiveDelays().Max(AttrDepartureDelay)
	})
}

// TotalFlightsPerOriginAirport counts the distinct flight numbers
// departing an airport.
func (in *Insights) TotalFlightsPerOriginAirport(ctx context.Context, airport string) (int, error) {
	if strings.TrimSpace(airport) == "" {
		return 0, errors.New("airport name cannot be empty")
	}

	key := cache.Key("Insights.TotalFlightsPerOriginAirport", airport)
	return cache.Through(ctx, in.c, key, 0, func(ctx context.Context) (int, error) {
		src := in.src.ByOriginAirport(airport)
		if src.Empty() {
			return 0, fmt.Errorf("no data found for airport: %s", airport)
		}
		return src.CountUnique(AttrFlightNumber)
	})
}

// narrow applies the airline and optional month filters and errors if
// nothing survives.
func (in *Insights) narrow(airline string, months []int) (Source, error) {
	src := in.src.ByAirline(airline)
	if len(months) > 0 {
		src = src.ByMonths(dedupeMonths(months))
	}
	if src.Empty() {
		if len(months) > 0 {
			return nil, fmt.Errorf("no data found for airline: %s with months: %v", airline, months)
		}
		return nil, fmt.Errorf("no data found for airline: %s", airline)
	}
	return src, nil
}

func validateAirline(airline string) error {
	if strings.TrimSpace(airline) == "" {
		return errors.New("airline name cannot be empty")
	}
	return nil
}

func validateMonths(months []int) error {
	for _, m := range months {
		if m < 1 || m > 12 {
			return errors.New("months must be integers between 1 and 12")
		}
	}
	return nil
}

// keyArgs builds the cache key arguments. A nil month list is a
// different logical call than an explicit empty one, so it is omitted
// from the key entirely. The caller's order is preserved — the key is
// order-sensitive even though filtering dedupes.
func keyArgs(airline string, months []int) []any {
	if months == nil {
		return []any{airline}
	}
	return []any{airline, months}
}

// dedupeMonths drops duplicates before filtering. Sorted for stable
// debug output, not for the cache key.
func dedupeMonths(months []int) []int {
	seen := map[int]bool{}
	out := make([]int, 0, len(months))
	for _, m := range months {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Ints(out)
	return out
}
