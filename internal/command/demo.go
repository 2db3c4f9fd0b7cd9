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

// DemoCommandAction runs the canonical demo: a handful of queries
// against the dataset, repeated calls of which show up as cache hits.
func DemoCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	in, closer, err := NewInsights(ctx, cmd)
	if err != nil {
		return err
	}
	defer closer()

	avg, err := in.AvgDepDelayPerAirline(ctx, "VX", nil)
	if err != nil {
		return err
	}
	fmt.Printf("\nAverage departure delay for VX airline: %d minutes\n", int(avg))

	avg, err = in.AvgDepDelayPerAirline(ctx, "VX", []int{6, 7, 8})
	if err != nil {
		return err
	}
	fmt.Printf("\nAverage departure delay for VX airline in summer months (Jun, Jul, Aug): %d minutes\n", int(avg))

	max, err := in.MaxDepDelayPerAirline(ctx, "VX", nil)
	if err != nil {
		return err
	}
	fmt.Printf("\nMax departure delay for VX airline: %d minutes\n", int(max))

	max, err = in.MaxDepDelayPerAirline(ctx, "VX", []int{12})
	if err != nil {
		return err
	}
	fmt.Printf("\nMax departure delay for VX airline in December: %d minutes\n", int(max))

	total, err := in.TotalFlightsPerOriginAirport(ctx, "SFO")
	if err != nil {
		return err
	}
	fmt.Printf("\nTotal flights for SFO airport: %s\n\n", humanize.Comma(int64(total)))

	return nil
}

// DemoCommandBuilder constructs the cli.Command for "demo".
func DemoCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Usage:     "run the canonical cached-query demo",
		UsageText: `flightctl demo [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewCSVFlag("demo", meta.Config.Source),
		},
		Action: DemoCommandAction,
	}
}
