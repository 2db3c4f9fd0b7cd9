// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package flights

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
)

// columnMapping translates logical attributes to the physical headers
// of the flights dataset. Only the Source needs to know these names.
var columnMapping = map[Attr]string{
	AttrAirline:        "AIRLINE",
	AttrDepartureDelay: "DEPARTURE_DELAY",
	AttrMonth:          "MONTH",
	AttrOriginAirport:  "ORIGIN_AIRPORT",
	AttrFlightNumber:   "FLIGHT_NUMBER",
}

// Row is one flight record, reduced to the attributes the queries use.
// DelayOK marks whether the delay cell held a parseable number; the
// dataset leaves it blank for cancelled flights.
type Row struct {
	Airline       string
	FlightNumber  string
	OriginAirport string
	Month         int
	Delay         float64
	DelayOK       bool
}

// CSVSource implements Source over rows loaded from the flights CSV.
// Filters share the loaded backing slice; a narrowed source is just a
// new view.
type CSVSource struct {
	rows []Row
}

// NewCSVSource wraps an already-materialized row set. Mostly useful in
// tests; production loading goes through FromCSV.
func NewCSVSource(rows []Row) *CSVSource {
	return &CSVSource{rows: rows}
}

// FromCSV loads the flights dataset from path. The header row is
// required and must carry every mapped physical column; extra columns
// are ignored. Rows with an unparseable month are dropped, rows with a
// blank or unparseable delay are kept with DelayOK unset.
func FromCSV(path string) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flights data: %w", err)
	}
	defer f.Close()

	log.Infof("loading flights data from %s", path)

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read flights header: %w", err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[name] = i
	}
	for attr, col := range columnMapping {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("flights data is missing column %s (%s)", col, attr)
		}
	}

	var rows []Row
	var dropped int
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read flights data: %w", err)
		}

		month, err := strconv.Atoi(rec[idx[columnMapping[AttrMonth]]])
		if err != nil {
			dropped++
			continue
		}

		row := Row{
			Airline:       rec[idx[columnMapping[AttrAirline]]],
			FlightNumber:  rec[idx[columnMapping[AttrFlightNumber]]],
			OriginAirport: rec[idx[columnMapping[AttrOriginAirport]]],
			Month:         month,
		}

		if delay, err := strconv.ParseFloat(rec[idx[columnMapping[AttrDepartureDelay]]], 64); err == nil {
			row.Delay = delay
			row.DelayOK = true
		}

		rows = append(rows, row)
	}

	if dropped > 0 {
		log.Warnf("dropped %d flights rows with unparseable months", dropped)
	}
	log.Infof("finished loading flights data, %d rows", len(rows))

	return &CSVSource{rows: rows}, nil
}

func (s *CSVSource) filter(keep func(Row) bool) *CSVSource {
	out := make([]Row, 0, len(s.rows))
	for _, row := range s.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return &CSVSource{rows: out}
}

func (s *CSVSource) ByAirline(airline string) Source {
	return s.filter(func(r Row) bool { return r.Airline == airline })
}

func (s *CSVSource) ByMonths(months []int) Source {
	in := map[int]bool{}
	for _, m := range months {
		in[m] = true
	}
	return s.filter(func(r Row) bool { return in[r.Month] })
}

func (s *CSVSource) PositiveDelays() Source {
	return s.filter(func(r Row) bool { return r.DelayOK && r.Delay > 0 })
}

func (s *CSVSource) ByOriginAirport(airport string) Source {
	return s.filter(func(r Row) bool { return r.OriginAirport == airport })
}

func (s *CSVSource) Mean(attr Attr) (float64, error) {
	if attr != AttrDepartureDelay {
		return 0, fmt.Errorf("mean is not supported for attribute %s", attr)
	}

	var sum float64
	var n int
	for _, r := range s.rows {
		if r.DelayOK {
			sum += r.Delay
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("no %s values to average", attr)
	}
	return sum / float64(n), nil
}

func (s *CSVSource) Max(attr Attr) (float64, error) {
	if attr != AttrDepartureDelay {
		return 0, fmt.Errorf("max is not supported for attribute %s", attr)
	}

	var max float64
	var n int
	for _, r := range s.rows {
		if !r.DelayOK {
			continue
		}
		if n == 0 || r.Delay > max {
			max = r.Delay
		}
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("no %s values to take a max of", attr)
	}
	return max, nil
}

func (s *CSVSource) CountUnique(attr Attr) (int, error) {
	seen := map[string]bool{}
	for _, r := range s.rows {
		switch attr {
		case AttrFlightNumber:
			seen[r.FlightNumber] = true
		case AttrAirline:
			seen[r.Airline] = true
		case AttrOriginAirport:
			seen[r.OriginAirport] = true
		case AttrMonth:
			seen[strconv.Itoa(r.Month)] = true
		default:
			return 0, fmt.Errorf("count unique is not supported for attribute %s", attr)
		}
	}
	return len(seen), nil
}

func (s *CSVSource) Empty() bool {
	return len(s.rows) == 0
}
