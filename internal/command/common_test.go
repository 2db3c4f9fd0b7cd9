// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonths(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []int
		wantErr bool
	}{
		{name: "empty", spec: "", want: nil},
		{name: "whitespace only", spec: "  ", want: nil},
		{name: "single", spec: "12", want: []int{12}},
		{name: "several", spec: "6,7,8", want: []int{6, 7, 8}},
		{name: "spaces around entries", spec: " 6, 7 ,8 ", want: []int{6, 7, 8}},
		{name: "order preserved", spec: "8,6,7", want: []int{8, 6, 7}},
		{name: "not a number", spec: "6,juli", wantErr: true},
		{name: "trailing comma", spec: "6,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonths(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
