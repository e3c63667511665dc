package logilicaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"
)

var (
	// ErrUnexpectedStatusCode is returned when logilica responds with a non-2xx status
	ErrUnexpectedStatusCode = errors.New("Logilica api responded with an unexpected status code")
)

// Client is the interface for communicating with the logilica import api
//
//go:generate mockgen -package=logilicaapi -destination ./mock.go -source=client.go
type Client interface {
	GetRepositories(ctx context.Context) (repositories []Repository, err error)
	CreateBuild(ctx context.Context, repoID string, payload CIBuildPayload) (err error)
}

// NewClient returns a new logilicaapi.Client
func NewClient(config *api.Config) Client {

	// transport level retries are kept to a minimum, the upload loop retries the whole exchange
	httpClient := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	httpClient.MaxRetries = 1
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = time.Second * 30

	return &client{
		config:     config,
		httpClient: httpClient,
	}
}

type client struct {
	config     *api.Config
	httpClient *pester.Client
}

func (c *client) GetRepositories(ctx context.Context) (repositories []Repository, err error) {

	body, err := c.callLogilicaAPI(ctx, http.MethodGet, "/repositories", nil)
	if err != nil {
		return
	}

	if err = json.Unmarshal(body, &repositories); err != nil {
		return nil, pkgerrors.Wrapf(err, "Failed unmarshalling logilica repositories response")
	}

	return
}

func (c *client) CreateBuild(ctx context.Context, repoID string, payload CIBuildPayload) (err error) {

	_, err = c.callLogilicaAPI(ctx, http.MethodPost, fmt.Sprintf("/ci_build/%v/create", url.PathEscape(repoID)), payload)

	return
}

func (c *client) callLogilicaAPI(ctx context.Context, method, path string, params interface{}) (body []byte, err error) {

	token, err := c.config.Logilica.RequireToken()
	if err != nil {
		return nil, err
	}

	var requestBody io.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		requestBody = bytes.NewReader(data)
	}

	requestURL := strings.TrimSuffix(c.config.Logilica.BaseURL, "/") + path

	request, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return nil, err
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	request.Header.Set("X-lgca-token", token)
	request.Header.Set("x-lgca-domain", c.config.Logilica.Domain)
	request.Header.Set("Accept", "application/json")
	if params != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "Calling %v %v failed", method, requestURL)
	}
	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	body, err = io.ReadAll(response.Body)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "Reading response for %v %v failed", method, requestURL)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		log.Debug().
			Str("url", requestURL).
			Str("requestMethod", method).
			Int("statusCode", response.StatusCode).
			Str("responseBody", string(body)).
			Msg("Logilica api call failed")

		return nil, fmt.Errorf("%v %v responded with %v: %w", method, requestURL, response.StatusCode, ErrUnexpectedStatusCode)
	}

	return body, nil
}
