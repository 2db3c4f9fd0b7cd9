// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/flightctl/internal/config"
	"github.com/staranto/flightctl/internal/meta"
	"github.com/staranto/flightctl/internal/version"
)

// InitApp assembles the root command. Configuration is loaded once here
// and carried to every subcommand through Metadata.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	cfg, _ := config.Load()
	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:    "flightctl",
		Usage:   "cached analytical queries over a flights dataset",
		Version: version.Version,
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			AvgCommandBuilder(meta),
			MaxCommandBuilder(meta),
			FlightsCommandBuilder(meta),
			DemoCommandBuilder(meta),
		},
		DefaultCommand: "demo",
	}

	return app, nil
}
