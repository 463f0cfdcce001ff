// Package cmd provides the command-line interface for the NRQL chart fetcher.
// The root command executes one NRQL query through the NerdGraph API, prints
// the result rows, and downloads the rendered static chart image to a file.
package cmd

import (
	"context"
	"fmt"
	"os"

	"nrql-chart-fetcher/pkg/chart"
	"nrql-chart-fetcher/pkg/client"
	"nrql-chart-fetcher/pkg/config"
	"nrql-chart-fetcher/pkg/download"
	"nrql-chart-fetcher/pkg/formatter"
	"nrql-chart-fetcher/pkg/logging"
	"nrql-chart-fetcher/pkg/nerdgraphiface"
	"nrql-chart-fetcher/pkg/validation"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	chartOpts = chart.DefaultOptions()
	fetchOpts = fetchOptions{
		clientConfig: client.DefaultConfig(),
		output:       formatter.OutputJSON,
	}
	verbose bool
)

type fetchOptions struct {
	clientConfig client.ClientConfig
	output       string
}

var rootCmd = &cobra.Command{
	Use:   `nrql-chart "<NRQL query>" <output-file> [config-path]`,
	Short: "Fetch a static chart image for an NRQL query",
	Long: `nrql-chart executes an NRQL query against the New Relic NerdGraph API,
prints the query results, and downloads the pre-rendered static chart image
to a local file.

Credentials are read from a JSON config file (default config.json):

  {"api_key": "YOUR_API_KEY", "account_id": YOUR_ACCOUNT_ID}

The NEW_RELIC_API_KEY and NEW_RELIC_ACCOUNT_ID environment variables override
the file values.`,
	Example: `  nrql-chart "SELECT average(duration) FROM Transaction FACET appName TIMESERIES" chart.png
  nrql-chart --chart-type PIE --width 800 --height 400 "SELECT count(*) FROM Transaction FACET name" chart.png my-config.json`,
	Args:          cobra.MaximumNArgs(3),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runFetch,
}

// Execute runs the CLI application. It executes the root command and exits
// non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

func init() {
	registerChartFlags(rootCmd.Flags(), &chartOpts)
	registerClientFlags(rootCmd.Flags(), &fetchOpts.clientConfig)
	rootCmd.Flags().StringVar(&fetchOpts.output, "output", formatter.OutputJSON,
		"result rendering on the console (json or table)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable diagnostic logging on stderr")
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		_ = cmd.Usage()
		return fmt.Errorf("requires an NRQL query and an output filename")
	}
	if err := logging.Init(verbose); err != nil {
		return err
	}

	query := args[0]
	outputFile := args[1]
	configPath := config.DefaultConfigPath
	if len(args) > 2 {
		configPath = args[2]
	}

	if fetchOpts.output != formatter.OutputJSON && fetchOpts.output != formatter.OutputTable {
		return fmt.Errorf("invalid --output %q, must be json or table", fetchOpts.output)
	}

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return err
	}
	if err := config.ValidateSettings(settings); err != nil {
		return err
	}

	req := &chart.Request{Query: query, Options: chartOpts}
	if err := validation.ValidateRequest(req); err != nil {
		return err
	}

	executor, err := buildExecutorFunc(settings)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchOpts.clientConfig.Timeout)
	defer cancel()

	pterm.Info.Println("Executing NRQL query...")
	pterm.Info.Printfln("Query: %s", query)
	logging.L().Debug("fetching chart",
		zap.Int("account_id", settings.AccountID),
		zap.String("chart_type", chartOpts.ChartType),
		zap.String("format", chartOpts.Format))

	result, err := executor.Fetch(ctx, settings.AccountID, req)
	if err != nil {
		pterm.Error.Println(err)
		return fmt.Errorf("failed to obtain a chart image URL")
	}

	pterm.Success.Printfln("Chart URL: %s", result.ChartURL)

	if len(result.Rows) > 0 {
		pterm.Info.Println("Query results:")
		if err := printRows(result.Rows); err != nil {
			pterm.Error.Printfln("could not render query results: %v", err)
		}
	}

	// A download failure is reported but does not change the exit status;
	// the chart URL was obtained and already printed.
	dl := newDownloaderFunc(fetchOpts.clientConfig.RetryCount, fetchOpts.clientConfig.Timeout)
	if err := dl.Fetch(ctx, result.ChartURL, outputFile); err != nil {
		pterm.Error.Println(err)
		return nil
	}
	pterm.Success.Printfln("Chart image saved: %s", outputFile)

	return nil
}

// These variables allow mocking in tests.
var (
	buildExecutorFunc = buildExecutor
	newDownloaderFunc = download.New
)

// buildExecutor wires the real NerdGraph client into a chart executor.
func buildExecutor(settings *config.Settings) (*chart.Executor, error) {
	cc := fetchOpts.clientConfig
	cc.APIKey = settings.APIKey
	if verbose {
		cc.LogLevel = "debug"
	}

	nr, err := client.GetClient(cc, &client.DefaultClientFactory{})
	if err != nil {
		return nil, err
	}
	return chart.NewExecutor(&nerdgraphiface.RealExecutor{NerdGraph: &nr.NerdGraph}), nil
}

func printRows(rows []interface{}) error {
	if fetchOpts.output == formatter.OutputTable {
		return formatter.WriteTable(os.Stdout, rows)
	}
	return formatter.WriteJSON(os.Stdout, rows)
}
