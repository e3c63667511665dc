package prow

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "prow"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) GetArtifacts(ctx context.Context, location ArtifactLocation) (artifacts *Artifacts, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "GetArtifacts", err) }()

	return s.Service.GetArtifacts(ctx, location)
}

func (s *loggingService) NormalizeStatusEvent(ctx context.Context, event githubapi.StatusEvent) (record *api.BuildRecord, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "NormalizeStatusEvent", err, api.ErrNotRelevant) }()

	return s.Service.NormalizeStatusEvent(ctx, event)
}

func (s *loggingService) NormalizeCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (record *api.BuildRecord, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "NormalizeCheckRunEvent", err, api.ErrNotRelevant) }()

	return s.Service.NormalizeCheckRunEvent(ctx, event)
}

func (s *loggingService) NormalizePullRequestStatus(ctx context.Context, repoFullName string, pullRequest githubapi.PullRequest, status githubapi.CommitStatus) (record *api.BuildRecord, err error) {
	defer func() {
		api.HandleLogError(s.prefix, "Service", "NormalizePullRequestStatus", err, api.ErrNotRelevant)
	}()

	return s.Service.NormalizePullRequestStatus(ctx, repoFullName, pullRequest, status)
}

func (s *loggingService) NormalizeHistoricalBuild(ctx context.Context, jobName, buildID string) (record *api.BuildRecord, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "NormalizeHistoricalBuild", err) }()

	return s.Service.NormalizeHistoricalBuild(ctx, jobName, buildID)
}
