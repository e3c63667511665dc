package github

import (
	"context"
	"time"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
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

func (s *metricsService) HasValidSignature(ctx context.Context, body []byte, signatureHeader string) bool {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "HasValidSignature", begin)
	}(time.Now())

	return s.Service.HasValidSignature(ctx, body, signatureHeader)
}

func (s *metricsService) RelayStatusEvent(ctx context.Context, event githubapi.StatusEvent) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "RelayStatusEvent", begin)
	}(time.Now())

	return s.Service.RelayStatusEvent(ctx, event)
}

func (s *metricsService) RelayCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "RelayCheckRunEvent", begin)
	}(time.Now())

	return s.Service.RelayCheckRunEvent(ctx, event)
}
