// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"fmt"
	"strconv"
	"strings"
)

// Key derives the cache key for an operation and its ordered arguments.
// The rendering is deterministic: the same logical call always yields
// the same key, and distinct argument lists (including a reordered
// sequence) yield distinct keys. The operation name is separated from
// the arguments by an explicit "(" so an argument value can never bleed
// into the name.
//
// Example: Key("Insights.AvgDepDelayPerAirline", "VX", []int{6, 7, 8})
// yields "Insights.AvgDepDelayPerAirline(VX,[6,7,8])".
//
// The set of wrapped operations and their argument shapes is fixed at
// development time, so an unsupported argument type panics rather than
// returning an error.
func Key(op string, args ...any) string {
	var b strings.Builder
	b.WriteString(op)
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		writeArg(&b, arg)
	}
	b.WriteByte(')')
	return b.String()
}

func writeArg(b *strings.Builder, arg any) {
	switch v := arg.(type) {
	case string:
		b.WriteString(v)
	case int:
		b.WriteString(strconv.Itoa(v))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case []int:
		b.WriteByte('[')
		for i, n := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(n))
		}
		b.WriteByte(']')
	case []string:
		b.WriteByte('[')
		b.WriteString(strings.Join(v, ","))
		b.WriteByte(']')
	default:
		panic(fmt.Sprintf("cache: unsupported key argument type %T", arg))
	}
}
