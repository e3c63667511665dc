package githubapi

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "githubapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetPullRequest(ctx context.Context, repoFullName string, number int) (pullRequest *PullRequest, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetPullRequest", err, ErrNotFound) }()

	return c.Client.GetPullRequest(ctx, repoFullName, number)
}

func (c *loggingClient) GetCommitStatus(ctx context.Context, repoFullName, sha string) (status *CombinedStatus, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetCommitStatus", err, ErrNotFound) }()

	return c.Client.GetCommitStatus(ctx, repoFullName, sha)
}

func (c *loggingClient) GetLatestPullRequestNumber(ctx context.Context, repoFullName string) (number int, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetLatestPullRequestNumber", err) }()

	return c.Client.GetLatestPullRequestNumber(ctx, repoFullName)
}
