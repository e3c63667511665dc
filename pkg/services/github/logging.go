package github

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "github"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) HasValidSignature(ctx context.Context, body []byte, signatureHeader string) bool {
	return s.Service.HasValidSignature(ctx, body, signatureHeader)
}

func (s *loggingService) RelayStatusEvent(ctx context.Context, event githubapi.StatusEvent) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "RelayStatusEvent", err, api.ErrNotRelevant) }()

	return s.Service.RelayStatusEvent(ctx, event)
}

func (s *loggingService) RelayCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "RelayCheckRunEvent", err, api.ErrNotRelevant) }()

	return s.Service.RelayCheckRunEvent(ctx, event)
}
