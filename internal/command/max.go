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

// MaxCommandAction is the action handler for the "max" subcommand. It
// reports the worst departure delay for an airline, optionally narrowed
// to a set of months.
func MaxCommandAction(ctx context.Context, cmd *cli.Command) error {
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
	max, err := in.MaxDepDelayPerAirline(ctx, airline, months)
	if err != nil {
		return err
	}

	if len(months) > 0 {
		fmt.Printf("Max departure delay for %s airline in months %v: %d minutes\n", airline, months, int(max))
	} else {
		fmt.Printf("Max departure delay for %s airline: %d minutes\n", airline, int(max))
	}

	return nil
}

// MaxCommandBuilder constructs the cli.Command for "max", wiring
// metadata, flags, and the action handler.
func MaxCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "max",
		Usage:     "maximum departure delay per airline",
		UsageText: `flightctl max --airline CODE [--months 12] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			airlineFlag,
			monthsFlag,
			NewCSVFlag("max", meta.Config.Source),
		},
		Action: MaxCommandAction,
	}
}
