package backfill

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "backfill"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) BackfillPullRequests(ctx context.Context, options PullRequestOptions) (summary Summary, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "BackfillPullRequests", err) }()

	return s.Service.BackfillPullRequests(ctx, options)
}

func (s *loggingService) BackfillJobHistory(ctx context.Context, options JobHistoryOptions) (summary Summary, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "BackfillJobHistory", err) }()

	return s.Service.BackfillJobHistory(ctx, options)
}
