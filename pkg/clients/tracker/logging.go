package tracker

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "tracker"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) Load(ctx context.Context, name string) (ids []string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Load", err) }()

	return c.Client.Load(ctx, name)
}

func (c *loggingClient) Append(ctx context.Context, name, id string) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "Append", err) }()

	return c.Client.Append(ctx, name, id)
}
