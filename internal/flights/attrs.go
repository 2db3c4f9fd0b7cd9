// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package flights

// Attr names a logical flight attribute. Queries refer to these, never
// to the raw CSV headers, so a dataset with renamed columns only needs
// a new column mapping in its Source implementation.
type Attr string

const (
	AttrAirline        Attr = "airline"
	AttrDepartureDelay Attr = "departure_delay"
	AttrMonth          Attr = "month"
	AttrOriginAirport  Attr = "origin_airport"
	AttrFlightNumber   Attr = "flight_number"
)
