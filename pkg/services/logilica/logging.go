package logilica

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "logilica"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) ResolveRepositoryID(ctx context.Context, repoFullName string) (repoID string, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "ResolveRepositoryID", err) }()

	return s.Service.ResolveRepositoryID(ctx, repoFullName)
}

func (s *loggingService) UploadBuild(ctx context.Context, record api.BuildRecord) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "UploadBuild", err) }()

	return s.Service.UploadBuild(ctx, record)
}
