package validation_test

import (
	"testing"

	"nrql-chart-fetcher/pkg/chart"
	"nrql-chart-fetcher/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	valid := func() *chart.Request {
		return chart.NewRequest("SELECT count(*) FROM Transaction")
	}

	tests := []struct {
		name      string
		mutate    func(*chart.Request) *chart.Request
		expectErr bool
		errMsg    string
	}{
		{
			name:   "valid request with defaults",
			mutate: func(r *chart.Request) *chart.Request { return r },
		},
		{
			name:      "nil request",
			mutate:    func(*chart.Request) *chart.Request { return nil },
			expectErr: true,
			errMsg:    "cannot be nil",
		},
		{
			name: "empty query",
			mutate: func(r *chart.Request) *chart.Request {
				r.Query = ""
				return r
			},
			expectErr: true,
			errMsg:    "query text cannot be empty",
		},
		{
			name: "unknown chart type",
			mutate: func(r *chart.Request) *chart.Request {
				r.Options.ChartType = "SPARKLINE"
				return r
			},
			expectErr: true,
			errMsg:    `invalid chart type "SPARKLINE"`,
		},
		{
			name: "lowercase chart type rejected",
			mutate: func(r *chart.Request) *chart.Request {
				r.Options.ChartType = "line"
				return r
			},
			expectErr: true,
			errMsg:    "invalid chart type",
		},
		{
			name: "unknown format",
			mutate: func(r *chart.Request) *chart.Request {
				r.Options.Format = "SVG"
				return r
			},
			expectErr: true,
			errMsg:    `invalid image format "SVG"`,
		},
		{
			name: "zero width",
			mutate: func(r *chart.Request) *chart.Request {
				r.Options.Width = 0
				return r
			},
			expectErr: true,
			errMsg:    "width must be a positive number",
		},
		{
			name: "negative height",
			mutate: func(r *chart.Request) *chart.Request {
				r.Options.Height = -10
				return r
			},
			expectErr: true,
			errMsg:    "height must be a positive number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateRequest(tt.mutate(valid()))
			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
