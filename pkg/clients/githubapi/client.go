package githubapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"
	"golang.org/x/oauth2"
)

var (
	// ErrNotFound is returned when the requested pull request or commit doesn't exist
	ErrNotFound = errors.New("The Github resource does not exist")

	// ErrNoPullRequests is returned when a repository has no pull requests at all
	ErrNoPullRequests = errors.New("The repository has no pull requests")
)

// Client is the interface for communicating with the github api
//
//go:generate mockgen -package=githubapi -destination ./mock.go -source=client.go
type Client interface {
	GetPullRequest(ctx context.Context, repoFullName string, number int) (pullRequest *PullRequest, err error)
	GetCommitStatus(ctx context.Context, repoFullName, sha string) (status *CombinedStatus, err error)
	GetLatestPullRequestNumber(ctx context.Context, repoFullName string) (number int, err error)
}

// NewClient creates an githubapi.Client to communicate with the Github api; without a token requests are unauthenticated and heavily rate limited
func NewClient(config *api.Config) Client {

	var transport http.RoundTripper = &nethttp.Transport{}
	if config.Github.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Github.Token}),
			Base:   transport,
		}
	}

	httpClient := pester.NewExtendedClient(&http.Client{Transport: transport})
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = time.Second * 10

	return &client{
		config:     config,
		httpClient: httpClient,
	}
}

type client struct {
	config     *api.Config
	httpClient *pester.Client
}

func (c *client) GetPullRequest(ctx context.Context, repoFullName string, number int) (pullRequest *PullRequest, err error) {

	// https://docs.github.com/en/rest/pulls/pulls#get-a-pull-request
	err = c.callGithubAPI(ctx, fmt.Sprintf("/repos/%v/pulls/%v", repoFullName, number), &pullRequest)
	if err != nil {
		return nil, err
	}

	return
}

func (c *client) GetCommitStatus(ctx context.Context, repoFullName, sha string) (status *CombinedStatus, err error) {

	// https://docs.github.com/en/rest/commits/statuses#get-the-combined-status-for-a-specific-reference
	err = c.callGithubAPI(ctx, fmt.Sprintf("/repos/%v/commits/%v/status", repoFullName, sha), &status)
	if err != nil {
		return nil, err
	}

	return
}

func (c *client) GetLatestPullRequestNumber(ctx context.Context, repoFullName string) (number int, err error) {

	var pullRequests []PullRequest
	err = c.callGithubAPI(ctx, fmt.Sprintf("/repos/%v/pulls?per_page=1&state=all", repoFullName), &pullRequests)
	if err != nil {
		return 0, err
	}

	if len(pullRequests) == 0 {
		return 0, fmt.Errorf("%v: %w", repoFullName, ErrNoPullRequests)
	}

	return pullRequests[0].Number, nil
}

func (c *client) callGithubAPI(ctx context.Context, path string, v interface{}) (err error) {

	url := strings.TrimSuffix(c.config.Github.APIBaseURL, "/") + path

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		// collect additional information on setting up connections
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	request.Header.Add("Accept", "application/vnd.github+json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return pkgerrors.Wrapf(err, "Calling Github api %v failed", url)
	}
	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return pkgerrors.Wrapf(err, "Reading Github api response for %v failed", url)
	}

	if response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%v: %w", url, ErrNotFound)
	}

	if response.StatusCode != http.StatusOK {
		log.Error().
			Str("url", url).
			Int("statusCode", response.StatusCode).
			Str("responseBody", string(body)).
			Msg("Github api call failed")

		return fmt.Errorf("Github api call %v failed with status code %v", url, response.StatusCode)
	}

	if err = json.Unmarshal(body, v); err != nil {
		return pkgerrors.Wrapf(err, "Deserializing response for %v Github api call failed", url)
	}

	return nil
}
