// Package testutil provides shared helpers and mocks for tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/newrelic/newrelic-client-go/v2/pkg/nerdgraph"
	"github.com/stretchr/testify/require"
)

// MockQueryExecutor is a nerdgraphiface.QueryExecutor that returns canned
// responses and records what it was called with.
type MockQueryExecutor struct {
	Response interface{}
	Err      error

	Calls         int
	LastQuery     string
	LastVariables map[string]interface{}
}

// QueryWithContext records the call and returns the configured response or error.
func (m *MockQueryExecutor) QueryWithContext(_ context.Context, query string, variables map[string]interface{}) (interface{}, error) {
	m.Calls++
	m.LastQuery = query
	m.LastVariables = variables
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// ChartQueryResponse builds a NerdGraph response carrying the given result rows
// and static chart URL on the data.actor.account.nrql path.
func ChartQueryResponse(rows []interface{}, chartURL string) nerdgraph.QueryResponse {
	return nerdgraph.QueryResponse{
		Actor: map[string]interface{}{
			"account": map[string]interface{}{
				"id": float64(123456),
				"nrql": map[string]interface{}{
					"results":        rows,
					"staticChartUrl": chartURL,
				},
			},
		},
	}
}

// WriteConfigFile writes content to a config.json inside a fresh temp dir and
// returns its path.
func WriteConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ClearCredentialEnv unsets the credential environment overrides for the
// duration of the test, so config file behavior is observed in isolation.
func ClearCredentialEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NEW_RELIC_API_KEY", "")
	os.Unsetenv("NEW_RELIC_API_KEY")
	t.Setenv("NEW_RELIC_ACCOUNT_ID", "")
	os.Unsetenv("NEW_RELIC_ACCOUNT_ID")
}
