package githubapi

import (
	"context"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "githubapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetPullRequest(ctx context.Context, repoFullName string, number int) (pullRequest *PullRequest, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetPullRequest"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("git-repo", repoFullName)
	span.SetTag("pull-request", number)

	return c.Client.GetPullRequest(ctx, repoFullName, number)
}

func (c *tracingClient) GetCommitStatus(ctx context.Context, repoFullName, sha string) (status *CombinedStatus, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetCommitStatus"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("git-repo", repoFullName)
	span.SetTag("git-revision", sha)

	return c.Client.GetCommitStatus(ctx, repoFullName, sha)
}

func (c *tracingClient) GetLatestPullRequestNumber(ctx context.Context, repoFullName string) (number int, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetLatestPullRequestNumber"))
	defer func() { api.FinishSpanWithError(span, err) }()
	span.SetTag("git-repo", repoFullName)

	return c.Client.GetLatestPullRequestNumber(ctx, repoFullName)
}
