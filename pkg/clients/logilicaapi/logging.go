package logilicaapi

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "logilicaapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetRepositories(ctx context.Context) (repositories []Repository, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetRepositories", err) }()

	return c.Client.GetRepositories(ctx)
}

func (c *loggingClient) CreateBuild(ctx context.Context, repoID string, payload CIBuildPayload) (err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "CreateBuild", err) }()

	return c.Client.CreateBuild(ctx, repoID, payload)
}
