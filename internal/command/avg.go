// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/flightctl/internal/meta"
)

// AvgCommandAction is the action handler for the "avg" subcommand. It
// reports the average departure delay for an airline, optionally
// narrowed to a set of months.
func AvgCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	months, err := ParseMonths(cmd.String("months"))
	if err != nil {
		return err
	}

	in, closer, err := NewInsights(ctx, cmd)
	if err != nil {
		return err
	}
	defer closer()

	airline := cmd.String("airline")
	avg, err := in.AvgDepDelayPerAirline(ctx, airline, months)
	if err != nil {
		return err
	}

	if len(months) > 0 {
		fmt.Printf("Average departure delay for %s airline in months %v: %d minutes\n", airline, months, int(avg))
	} else {
		fmt.Printf("Average departure delay for %s airline: %d minutes\n", airline, int(avg))
	}

	return nil
}

// AvgCommandBuilder constructs the cli.Command for "avg", wiring
// metadata, flags, and the action handler.
func AvgCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "avg",
		Usage:     "average departure delay per airline",
		UsageText: `flightctl avg --airline CODE [--months 6,7,8] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			airlineFlag,
			monthsFlag,
			NewCSVFlag("avg", meta.Config.Source),
		},
		Action: AvgCommandAction,
	}
}
