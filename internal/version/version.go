// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version reported by --version. The
// default is overridden at release time via -ldflags.
package version

var Version = "dev"
