package nerdgraphiface_test

import (
	"testing"

	"nrql-chart-fetcher/pkg/nerdgraphiface"
	"nrql-chart-fetcher/pkg/testutil"

	"github.com/stretchr/testify/assert"
)

// Compile-time checks that both the real wrapper and the shared mock satisfy
// the executor interface.
var (
	_ nerdgraphiface.QueryExecutor = (*nerdgraphiface.RealExecutor)(nil)
	_ nerdgraphiface.QueryExecutor = (*testutil.MockQueryExecutor)(nil)
)

func TestRealExecutorImplementsInterface(t *testing.T) {
	var executor nerdgraphiface.QueryExecutor = &nerdgraphiface.RealExecutor{}
	assert.NotNil(t, executor)
}
