package prowapi

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "prowapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetJobHistoryBuildIDs(ctx context.Context, jobURL string) (buildIDs []string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetJobHistoryBuildIDs", err) }()

	return c.Client.GetJobHistoryBuildIDs(ctx, jobURL)
}
