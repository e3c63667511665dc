package logilicaapi

import (
	"context"
	"time"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/go-kit/kit/metrics"
)

// NewMetricsClient returns a new instance of a metrics Client.
func NewMetricsClient(c Client, requestCount metrics.Counter, requestLatency metrics.Histogram) Client {
	return &metricsClient{c, requestCount, requestLatency}
}

type metricsClient struct {
	Client         Client
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (c *metricsClient) GetRepositories(ctx context.Context) (repositories []Repository, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetRepositories", begin)
	}(time.Now())

	return c.Client.GetRepositories(ctx)
}

func (c *metricsClient) CreateBuild(ctx context.Context, repoID string, payload CIBuildPayload) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "CreateBuild", begin)
	}(time.Now())

	return c.Client.CreateBuild(ctx, repoID, payload)
}
