// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	airlineFlag *cli.StringFlag = &cli.StringFlag{
		Name:    "airline",
		Aliases: []string{"a"},
		Usage:   "IATA airline code to query (e.g. VX)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FLIGHTCTL_AIRLINE"),
		),
	}

	monthsFlag *cli.StringFlag = &cli.StringFlag{
		Name:    "months",
		Aliases: []string{"m"},
		Usage:   "comma-separated month numbers to narrow the query (e.g. 6,7,8)",
		Value:   "",
	}

	airportFlag *cli.StringFlag = &cli.StringFlag{
		Name:    "airport",
		Aliases: []string{"p"},
		Usage:   "IATA origin airport code to query (e.g. SFO)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FLIGHTCTL_AIRPORT"),
		),
	}
)

// NewCSVFlag builds the per-command dataset path flag. Resolution order
// is env, the command's own yaml key, the shared demo.csv key, then the
// default path.
func NewCSVFlag(ns, source string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "csv",
		Usage: "path to the flights dataset",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("FLIGHTCTL_DEMO_CSV"),
			yaml.YAML(ns+"."+"csv", altsrc.StringSourcer(source)),
			yaml.YAML("demo.csv", altsrc.StringSourcer(source)),
		),
		Value: "data/flights.csv",
	}
}
