package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMassBins(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []MassBin
		wantErr bool
	}{
		{
			name: "two bins keep given order",
			spec: "0.0-8.0,8.0-25.0",
			want: []MassBin{{Low: 0.0, High: 8.0}, {Low: 8.0, High: 25.0}},
		},
		{
			name: "single bin",
			spec: "1.0-40.0",
			want: []MassBin{{Low: 1.0, High: 40.0}},
		},
		{
			name: "overlapping bins are not rejected",
			spec: "0.0-10.0,5.0-8.0",
			want: []MassBin{{Low: 0.0, High: 10.0}, {Low: 5.0, High: 8.0}},
		},
		{
			name: "empty spec yields no bins",
			spec: "",
			want: nil,
		},
		{
			name:    "missing high bound",
			spec:    "0.0",
			wantErr: true,
		},
		{
			name:    "non-numeric bound",
			spec:    "0.0-low",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMassBins(tt.spec)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTagList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty input is an empty list", in: "", want: []string{}},
		{name: "single tag", in: "NSNS", want: []string{"NSNS"}},
		{name: "two tags", in: "NSNS,NSBH", want: []string{"NSNS", "NSBH"}},
		{name: "whitespace trimmed", in: " NSNS , NSBH ", want: []string{"NSNS", "NSBH"}},
		{name: "stray commas dropped", in: "NSNS,,NSBH,", want: []string{"NSNS", "NSBH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTagList(tt.in))
		})
	}
}
