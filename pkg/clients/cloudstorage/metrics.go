package cloudstorage

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

func (c *metricsClient) GetObject(ctx context.Context, bucket, objectPath string) (data []byte, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetObject", begin)
	}(time.Now())

	return c.Client.GetObject(ctx, bucket, objectPath)
}

func (c *metricsClient) GetJSON(ctx context.Context, bucket, objectPath string, v interface{}) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetJSON", begin)
	}(time.Now())

	return c.Client.GetJSON(ctx, bucket, objectPath, v)
}
