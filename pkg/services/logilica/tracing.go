package logilica

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "logilica"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) ResolveRepositoryID(ctx context.Context, repoFullName string) (repoID string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "ResolveRepositoryID"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("git-repo", repoFullName)

	return s.Service.ResolveRepositoryID(ctx, repoFullName)
}

func (s *tracingService) UploadBuild(ctx context.Context, record api.BuildRecord) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "UploadBuild"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("git-repo", record.RepoFullName)
	span.SetTag("build.original_id", record.OriginalID)

	return s.Service.UploadBuild(ctx, record)
}
