// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package flights

// Source is a logical flight dataset supporting narrowing and
// aggregation. Filters return a narrowed Source without mutating the
// receiver, so query chains read left to right:
//
//	src.ByAirline("VX").ByMonths([]int{6, 7, 8}).PositiveDelays()
type Source interface {
	// ByAirline narrows to flights operated by the given airline code.
	ByAirline(airline string) Source

	// ByMonths narrows to flights departing in any of the given months.
	ByMonths(months []int) Source

	// PositiveDelays narrows to flights that actually left late.
	PositiveDelays() Source

	// ByOriginAirport narrows to flights departing the given airport.
	ByOriginAirport(airport string) Source

	// Mean computes the mean of a numeric attribute. Errors when the
	// source has no usable values for it.
	Mean(attr Attr) (float64, error)

	// Max computes the maximum of a numeric attribute. Errors when the
	// source has no usable values for it.
	Max(attr Attr) (float64, error)

	// CountUnique counts distinct values of an attribute.
	CountUnique(attr Attr) (int, error)

	// Empty reports whether the source has no rows.
	Empty() bool
}
