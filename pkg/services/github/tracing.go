package github

import (
	"context"
	"errors"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
	"github.com/opentracing/opentracing-go"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "github"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) HasValidSignature(ctx context.Context, body []byte, signatureHeader string) (validSignature bool) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "HasValidSignature"))
	defer func() { span.SetTag("github.valid_signature", validSignature); api.FinishSpan(span) }()

	return s.Service.HasValidSignature(ctx, body, signatureHeader)
}

func (s *tracingService) RelayStatusEvent(ctx context.Context, event githubapi.StatusEvent) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "RelayStatusEvent"))
	defer func() { api.FinishSpanWithError(span, s.handleError(err)) }()
	span.SetTag("github.status_context", event.Context)
	span.SetTag("github.status_state", event.State)

	return s.Service.RelayStatusEvent(ctx, event)
}

func (s *tracingService) RelayCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "RelayCheckRunEvent"))
	defer func() { api.FinishSpanWithError(span, s.handleError(err)) }()
	span.SetTag("github.check_run", event.CheckRun.Name)

	return s.Service.RelayCheckRunEvent(ctx, event)
}

func (s *tracingService) handleError(err error) error {
	if errors.Is(err, api.ErrNotRelevant) {
		return nil
	}
	return err
}
