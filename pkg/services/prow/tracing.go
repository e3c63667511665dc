package prow

import (
	"context"
	"errors"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
	"github.com/opentracing/opentracing-go"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "prow"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) GetArtifacts(ctx context.Context, location ArtifactLocation) (artifacts *Artifacts, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "GetArtifacts"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("gcs.bucket", location.Bucket)
	span.SetTag("gcs.prefix", location.Prefix)

	return s.Service.GetArtifacts(ctx, location)
}

func (s *tracingService) NormalizeStatusEvent(ctx context.Context, event githubapi.StatusEvent) (record *api.BuildRecord, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "NormalizeStatusEvent"))
	defer func() { api.FinishSpanWithError(span, s.handleError(err)) }()
	span.SetTag("github.status_context", event.Context)

	return s.Service.NormalizeStatusEvent(ctx, event)
}

func (s *tracingService) NormalizeCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (record *api.BuildRecord, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "NormalizeCheckRunEvent"))
	defer func() { api.FinishSpanWithError(span, s.handleError(err)) }()
	span.SetTag("github.check_run", event.CheckRun.Name)

	return s.Service.NormalizeCheckRunEvent(ctx, event)
}

func (s *tracingService) NormalizePullRequestStatus(ctx context.Context, repoFullName string, pullRequest githubapi.PullRequest, status githubapi.CommitStatus) (record *api.BuildRecord, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "NormalizePullRequestStatus"))
	defer func() { api.FinishSpanWithError(span, s.handleError(err)) }()
	span.SetTag("git-repo", repoFullName)
	span.SetTag("pull-request", pullRequest.Number)

	return s.Service.NormalizePullRequestStatus(ctx, repoFullName, pullRequest, status)
}

func (s *tracingService) NormalizeHistoricalBuild(ctx context.Context, jobName, buildID string) (record *api.BuildRecord, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "NormalizeHistoricalBuild"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("prow.job", jobName)
	span.SetTag("prow.build_id", buildID)

	return s.Service.NormalizeHistoricalBuild(ctx, jobName, buildID)
}

func (s *tracingService) handleError(err error) error {
	if errors.Is(err, api.ErrNotRelevant) {
		return nil
	}
	return err
}
