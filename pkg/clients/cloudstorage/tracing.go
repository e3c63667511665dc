package cloudstorage

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "cloudstorage"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetObject(ctx context.Context, bucket, objectPath string) (data []byte, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetObject"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("gcs.bucket", bucket)
	span.SetTag("gcs.object", objectPath)

	return c.Client.GetObject(ctx, bucket, objectPath)
}

func (c *tracingClient) GetJSON(ctx context.Context, bucket, objectPath string, v interface{}) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetJSON"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetJSON(ctx, bucket, objectPath, v)
}
