// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package flights is the data collaborator feeding the cache core: a
// logical flight data source over the flights CSV dataset and the
// aggregation queries (delay statistics, flight counts) whose results
// get cached. Queries speak logical attributes only; mapping to the
// physical CSV columns is the source's problem.
package flights
