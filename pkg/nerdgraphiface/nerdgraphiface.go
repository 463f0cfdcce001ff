// Package nerdgraphiface provides interfaces for NerdGraph GraphQL query execution.
// This package enables dependency injection and testing by abstracting the concrete
// New Relic client implementation behind interfaces.
package nerdgraphiface

import (
	"context"

	"github.com/newrelic/newrelic-client-go/v2/pkg/nerdgraph"
)

// QueryExecutor defines the interface for executing raw GraphQL queries against
// the NerdGraph API. This abstraction allows for easier testing and dependency
// injection.
type QueryExecutor interface {
	QueryWithContext(ctx context.Context, query string, variables map[string]interface{}) (interface{}, error)
}

// RealExecutor is a wrapper around the real nerdgraph.NerdGraph that implements
// QueryExecutor. This allows us to use dependency injection in production code.
type RealExecutor struct {
	NerdGraph *nerdgraph.NerdGraph
}

// QueryWithContext executes a GraphQL query using the real New Relic client.
func (r *RealExecutor) QueryWithContext(ctx context.Context, query string, variables map[string]interface{}) (interface{}, error) {
	return r.NerdGraph.QueryWithContext(ctx, query, variables)
}
