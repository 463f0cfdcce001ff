// Package health verifies that the configured credentials can reach the
// New Relic API and access the configured account.
package health

import (
	"context"
	stderrors "errors"
	"fmt"

	"nrql-chart-fetcher/pkg/chart"
	"nrql-chart-fetcher/pkg/config"

	nrerrors "github.com/newrelic/newrelic-client-go/v2/pkg/errors"
)

// testQuery is cheap, universally available, and exercises both API
// connectivity and account-level permissions.
const testQuery = "SELECT count(*) FROM Transaction SINCE 1 hour ago LIMIT 1"

// Result reports the outcome of a connection check.
type Result struct {
	OK      bool
	Message string
}

// CheckConnection validates the settings and performs a test query against the
// account. Failures are reported in the Result, never as a returned error.
func CheckConnection(ctx context.Context, settings *config.Settings, executor *chart.Executor) *Result {
	if executor == nil {
		return &Result{Message: "chart executor is not initialized for connection check"}
	}

	if err := config.ValidateSettings(settings); err != nil {
		return &Result{Message: fmt.Sprintf("configuration validation failed: %s", err)}
	}

	result, err := executor.Fetch(ctx, settings.AccountID, chart.NewRequest(testQuery))
	if err != nil {
		var unauthorized *nrerrors.UnauthorizedError
		if stderrors.As(err, &unauthorized) {
			return &Result{Message: fmt.Sprintf(
				"authentication failed for account ID %d; verify the API key is correct and has access to this account",
				settings.AccountID)}
		}
		return &Result{Message: fmt.Sprintf(
			"failed to connect to the New Relic API (account ID %d): %s", settings.AccountID, err)}
	}

	return &Result{
		OK: true,
		Message: fmt.Sprintf("connected to the New Relic API; account ID %d is accessible (%d data point(s) returned)",
			settings.AccountID, len(result.Rows)),
	}
}
