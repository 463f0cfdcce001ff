package cmd

import (
	"nrql-chart-fetcher/pkg/chart"
	"nrql-chart-fetcher/pkg/client"

	"github.com/spf13/pflag"
)

// registerChartFlags binds the chart rendering options onto a flag set. The
// defaults match what the API uses when the flags are omitted.
func registerChartFlags(fs *pflag.FlagSet, opts *chart.Options) {
	fs.StringVar(&opts.ChartType, "chart-type", opts.ChartType,
		"chart type (LINE, BAR, PIE, AREA, ...)")
	fs.StringVar(&opts.Format, "format", opts.Format,
		"image format (PNG or PDF)")
	fs.IntVar(&opts.Width, "width", opts.Width, "chart width in pixels")
	fs.IntVar(&opts.Height, "height", opts.Height, "chart height in pixels")
}

// registerClientFlags binds the API client options onto a flag set.
func registerClientFlags(fs *pflag.FlagSet, cc *client.ClientConfig) {
	fs.DurationVar(&cc.Timeout, "timeout", cc.Timeout,
		"timeout for each HTTP request")
	fs.IntVar(&cc.RetryCount, "retries", cc.RetryCount,
		"retries for transient failures while downloading the chart image")
	fs.StringVar(&cc.Region, "region", cc.Region,
		"New Relic region (US or EU)")
}
