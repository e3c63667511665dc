package logilicaapi

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "logilicaapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetRepositories(ctx context.Context) (repositories []Repository, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetRepositories"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetRepositories(ctx)
}

func (c *tracingClient) CreateBuild(ctx context.Context, repoID string, payload CIBuildPayload) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "CreateBuild"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("logilica.repo_id", repoID)

	return c.Client.CreateBuild(ctx, repoID, payload)
}
