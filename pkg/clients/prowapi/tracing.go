package prowapi

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "prowapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetJobHistoryBuildIDs(ctx context.Context, jobURL string) (buildIDs []string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetJobHistoryBuildIDs"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("prow.job_url", jobURL)

	return c.Client.GetJobHistoryBuildIDs(ctx, jobURL)
}
