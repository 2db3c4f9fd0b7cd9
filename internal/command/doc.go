// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command builds the flightctl CLI surface: the avg, max and
// flights queries plus the demo script, each wired to the cache-backed
// insights engine.
package command
