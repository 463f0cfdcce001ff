package cmd

import (
	"fmt"

	"nrql-chart-fetcher/pkg/config"
	"nrql-chart-fetcher/pkg/health"
	"nrql-chart-fetcher/pkg/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var checkConfigPath string

// checkCmd verifies that the configured credentials can reach the New Relic
// API by running a cheap test query against the account.
var checkCmd = &cobra.Command{
	Use:           "check",
	Short:         "Verify API credentials and account access",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(verbose); err != nil {
			return err
		}

		settings, err := config.LoadSettings(checkConfigPath)
		if err != nil {
			return err
		}

		executor, err := buildExecutorFunc(settings)
		if err != nil {
			return err
		}

		result := health.CheckConnection(cmd.Context(), settings, executor)
		if !result.OK {
			pterm.Error.Println(result.Message)
			return fmt.Errorf("connection check failed")
		}
		pterm.Success.Println(result.Message)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", config.DefaultConfigPath,
		"path to the JSON config file")
	registerClientFlags(checkCmd.Flags(), &fetchOpts.clientConfig)
	rootCmd.AddCommand(checkCmd)
}
