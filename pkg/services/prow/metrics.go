package prow

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

func (s *metricsService) GetArtifacts(ctx context.Context, location ArtifactLocation) (artifacts *Artifacts, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "GetArtifacts", begin)
	}(time.Now())

	return s.Service.GetArtifacts(ctx, location)
}

func (s *metricsService) NormalizeStatusEvent(ctx context.Context, event githubapi.StatusEvent) (record *api.BuildRecord, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "NormalizeStatusEvent", begin)
	}(time.Now())

	return s.Service.NormalizeStatusEvent(ctx, event)
}

func (s *metricsService) NormalizeCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (record *api.BuildRecord, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "NormalizeCheckRunEvent", begin)
	}(time.Now())

	return s.Service.NormalizeCheckRunEvent(ctx, event)
}

func (s *metricsService) NormalizePullRequestStatus(ctx context.Context, repoFullName string, pullRequest githubapi.PullRequest, status githubapi.CommitStatus) (record *api.BuildRecord, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "NormalizePullRequestStatus", begin)
	}(time.Now())

	return s.Service.NormalizePullRequestStatus(ctx, repoFullName, pullRequest, status)
}

func (s *metricsService) NormalizeHistoricalBuild(ctx context.Context, jobName, buildID string) (record *api.BuildRecord, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "NormalizeHistoricalBuild", begin)
	}(time.Now())

	return s.Service.NormalizeHistoricalBuild(ctx, jobName, buildID)
}
