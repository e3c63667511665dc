package logilica

import (
	"context"
	"time"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/go-kit/kit/metrics"
)

// NewMetricsService returns a new instance of a metrics Service.
func NewMetricsService(s Service, requestCount metrics.Counter, requestLatency metrics.Histogram) Service {
	return &metricsService{s, requestCount, requestLatency}
}

type metricsService struct {
	Service        Service
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (s *metricsService) ResolveRepositoryID(ctx context.Context, repoFullName string) (repoID string, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "ResolveRepositoryID", begin)
	}(time.Now())

	return s.Service.ResolveRepositoryID(ctx, repoFullName)
}

func (s *metricsService) UploadBuild(ctx context.Context, record api.BuildRecord) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "UploadBuild", begin)
	}(time.Now())

	return s.Service.UploadBuild(ctx, record)
}
