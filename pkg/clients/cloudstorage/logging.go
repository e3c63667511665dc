package cloudstorage

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "cloudstorage"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetObject(ctx context.Context, bucket, objectPath string) (data []byte, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetObject", err) }()

	return c.Client.GetObject(ctx, bucket, objectPath)
}

func (c *loggingClient) GetJSON(ctx context.Context, bucket, objectPath string, v interface{}) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetJSON", err) }()

	return c.Client.GetJSON(ctx, bucket, objectPath, v)
}
