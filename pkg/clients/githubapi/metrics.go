package githubapi

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

func (c *metricsClient) GetPullRequest(ctx context.Context, repoFullName string, number int) (pullRequest *PullRequest, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetPullRequest", begin)
	}(time.Now())

	return c.Client.GetPullRequest(ctx, repoFullName, number)
}

func (c *metricsClient) GetCommitStatus(ctx context.Context, repoFullName, sha string) (status *CombinedStatus, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetCommitStatus", begin)
	}(time.Now())

	return c.Client.GetCommitStatus(ctx, repoFullName, sha)
}

func (c *metricsClient) GetLatestPullRequestNumber(ctx context.Context, repoFullName string) (number int, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetLatestPullRequestNumber", begin)
	}(time.Now())

	return c.Client.GetLatestPullRequestNumber(ctx, repoFullName)
}
