// Package validation provides functionality for validating chart requests
// before any network activity takes place.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"nrql-chart-fetcher/pkg/chart"
)

// ValidateRequest validates a chart request. It checks for required fields and
// that the rendering options are members of the API's enum sets, since those
// values are interpolated into the GraphQL document.
func ValidateRequest(req *chart.Request) error {
	if req == nil {
		return fmt.Errorf("chart request cannot be nil")
	}

	if req.Query == "" {
		return fmt.Errorf("NRQL query text cannot be empty")
	}

	if !chart.ValidChartTypes[req.Options.ChartType] {
		return fmt.Errorf("invalid chart type %q, must be one of: %s",
			req.Options.ChartType, enumList(chart.ValidChartTypes))
	}

	if !chart.ValidFormats[req.Options.Format] {
		return fmt.Errorf("invalid image format %q, must be one of: %s",
			req.Options.Format, enumList(chart.ValidFormats))
	}

	if req.Options.Width <= 0 {
		return fmt.Errorf("chart width must be a positive number, got %d", req.Options.Width)
	}

	if req.Options.Height <= 0 {
		return fmt.Errorf("chart height must be a positive number, got %d", req.Options.Height)
	}

	return nil
}

func enumList(set map[string]bool) string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
