package chart

import (
	"context"
	"fmt"

	"nrql-chart-fetcher/pkg/nerdgraphiface"

	"github.com/newrelic/newrelic-client-go/v2/pkg/nerdgraph"
)

// QueryError represents a failure to execute the chart query, either at the
// transport level or reported by the API as a GraphQL errors array. Both are
// treated identically by callers: no results, no chart URL.
type QueryError struct {
	Query string
	Msg   string
	Err   error // Wrapped error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chart query error for '%s': %s: %v", e.Query, e.Msg, e.Err)
	}
	return fmt.Sprintf("chart query error for '%s': %s", e.Query, e.Msg)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a successful API response that is missing an
// expected key on the data.actor.account.nrql path.
type MalformedResponseError struct {
	Path string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed NerdGraph response: missing or invalid '%s'", e.Path)
}

// Result holds what a chart query produced: the raw NRQL result rows and the
// pre-rendered static chart URL.
type Result struct {
	Rows     []interface{}
	ChartURL string
}

// Executor handles the execution of chart queries against NerdGraph.
type Executor struct {
	executor nerdgraphiface.QueryExecutor
}

// NewExecutor creates a new chart executor with the given GraphQL query executor.
func NewExecutor(executor nerdgraphiface.QueryExecutor) *Executor {
	return &Executor{executor: executor}
}

// Fetch runs the chart query for req against accountID and returns the result
// rows together with the static chart URL. Transport failures and GraphQL-level
// errors both surface as a *QueryError; a response missing expected keys
// surfaces as a *MalformedResponseError.
func (e *Executor) Fetch(ctx context.Context, accountID int, req *Request) (*Result, error) {
	if e.executor == nil {
		return nil, &QueryError{Query: req.Query, Msg: "GraphQL query executor is nil, cannot execute query"}
	}
	if req.Query == "" {
		return nil, &QueryError{Query: req.Query, Msg: "NRQL query text cannot be empty"}
	}
	if accountID == 0 {
		return nil, &QueryError{Query: req.Query, Msg: "New Relic account ID cannot be 0"}
	}

	document := req.Document(accountID)

	// The client library surfaces a response-body errors array as a Go error,
	// one message per entry, so GraphQL failures and transport failures arrive
	// on the same path here.
	resp, err := e.executor.QueryWithContext(ctx, document, map[string]interface{}{})
	if err != nil {
		return nil, &QueryError{Query: req.Query, Msg: "error from New Relic API", Err: err}
	}

	return extractResult(resp)
}

// extractResult walks the data.actor.account.nrql path of a NerdGraph response.
func extractResult(resp interface{}) (*Result, error) {
	queryResp, ok := resp.(nerdgraph.QueryResponse)
	if !ok {
		return nil, &MalformedResponseError{Path: "data"}
	}

	actor, ok := queryResp.Actor.(map[string]interface{})
	if !ok {
		return nil, &MalformedResponseError{Path: "data.actor"}
	}

	account, ok := actor["account"].(map[string]interface{})
	if !ok {
		return nil, &MalformedResponseError{Path: "data.actor.account"}
	}

	nrql, ok := account["nrql"].(map[string]interface{})
	if !ok {
		return nil, &MalformedResponseError{Path: "data.actor.account.nrql"}
	}

	chartURL, ok := nrql["staticChartUrl"].(string)
	if !ok || chartURL == "" {
		return nil, &MalformedResponseError{Path: "data.actor.account.nrql.staticChartUrl"}
	}

	// results may legitimately be an empty array; only a wrong type is malformed.
	rows, ok := nrql["results"].([]interface{})
	if !ok && nrql["results"] != nil {
		return nil, &MalformedResponseError{Path: "data.actor.account.nrql.results"}
	}

	return &Result{Rows: rows, ChartURL: chartURL}, nil
}
