package githubapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/stretchr/testify/assert"
)

func getClient(serverURL, token string) Client {
	config := &api.Config{
		Github: &api.GithubConfig{
			APIBaseURL: serverURL,
			Token:      token,
		},
	}
	config.SetDefaults()
	return NewClient(config)
}

func TestGetPullRequest(t *testing.T) {

	t.Run("ReturnsPullRequestAndSendsBearerToken", func(t *testing.T) {

		var receivedAuthorization, receivedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedAuthorization = r.Header.Get("Authorization")
			receivedPath = r.URL.Path
			_, _ = w.Write([]byte(`{"number":12,"user":{"login":"jdoe"},"head":{"sha":"abc123"}}`))
		}))
		defer server.Close()

		client := getClient(server.URL, "ghp_token")

		// act
		pullRequest, err := client.GetPullRequest(context.Background(), "openshift/origin", 12)

		assert.Nil(t, err)
		assert.Equal(t, 12, pullRequest.Number)
		assert.Equal(t, "abc123", pullRequest.Head.Sha)
		assert.Equal(t, "jdoe", pullRequest.User.Login)
		assert.Equal(t, "Bearer ghp_token", receivedAuthorization)
		assert.Equal(t, "/repos/openshift/origin/pulls/12", receivedPath)
	})

	t.Run("ReturnsErrNotFoundFor404", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := getClient(server.URL, "")

		// act
		_, err := client.GetPullRequest(context.Background(), "openshift/origin", 12)

		assert.NotNil(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestGetCommitStatus(t *testing.T) {

	t.Run("ReturnsCombinedStatus", func(t *testing.T) {

		var receivedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedPath = r.URL.Path
			_, _ = w.Write([]byte(`{"state":"failure","statuses":[{"context":"ci/prow/e2e","state":"failure","target_url":"https://prow/gs/b/p/1"}]}`))
		}))
		defer server.Close()

		client := getClient(server.URL, "")

		// act
		status, err := client.GetCommitStatus(context.Background(), "openshift/origin", "abc123")

		assert.Nil(t, err)
		assert.Equal(t, "/repos/openshift/origin/commits/abc123/status", receivedPath)
		if assert.Equal(t, 1, len(status.Statuses)) {
			assert.Equal(t, "https://prow/gs/b/p/1", status.Statuses[0].TargetURL)
		}
	})
}

func TestGetLatestPullRequestNumber(t *testing.T) {

	t.Run("ReturnsNumberOfMostRecentPullRequest", func(t *testing.T) {

		var receivedQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`[{"number":4321}]`))
		}))
		defer server.Close()

		client := getClient(server.URL, "")

		// act
		number, err := client.GetLatestPullRequestNumber(context.Background(), "openshift/origin")

		assert.Nil(t, err)
		assert.Equal(t, 4321, number)
		assert.Equal(t, "per_page=1&state=all", receivedQuery)
	})

	t.Run("ReturnsErrNoPullRequestsForEmptyList", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := getClient(server.URL, "")

		// act
		_, err := client.GetLatestPullRequestNumber(context.Background(), "openshift/origin")

		assert.True(t, errors.Is(err, ErrNoPullRequests))
	})
}
