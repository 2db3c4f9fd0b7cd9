// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/flightctl/internal/meta"
)

// FlightsCommandAction is the action handler for the "flights"
// subcommand. It reports the number of distinct flights departing an
// origin airport.
func FlightsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	in, closer, err := NewInsights(ctx, cmd)
	if err != nil {
		return err
	}
	defer closer()

	airport := cmd.String("airport")
	total, err := in.TotalFlightsPerOriginAirport(ctx, airport)
	if err != nil {
		return err
	}

	fmt.Printf("Total flights for %s airport: %s\n", airport, humanize.Comma(int64(total)))

	return nil
}

// FlightsCommandBuilder constructs the cli.Command for "flights",
// wiring metadata, flags, and the action handler.
func FlightsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "flights",
		Usage:     "total flights per origin airport",
		UsageText: `flightctl flights --airport CODE [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			airportFlag,
			NewCSVFlag("flights", meta.Config.Source),
		},
		Action: FlightsCommandAction,
	}
}
