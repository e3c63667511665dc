package prowapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	pkgerrors "github.com/pkg/errors"
	"github.com/sethgrid/pester"
	"golang.org/x/net/html"
)

var (
	// ErrInvalidJobURL is returned when no job name can be taken from a job history url
	ErrInvalidJobURL = errors.New("Invalid prow job history url")

	buildIDRegex = regexp.MustCompile(`\b(\d{15,})\b`)
)

// Client is the interface for reading the prow job history pages
//
//go:generate mockgen -package=prowapi -destination ./mock.go -source=client.go
type Client interface {
	GetJobHistoryBuildIDs(ctx context.Context, jobURL string) (buildIDs []string, err error)
}

// NewClient returns a new prowapi.Client
func NewClient() Client {

	httpClient := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = time.Second * 30

	return &client{
		httpClient: httpClient,
	}
}

type client struct {
	httpClient *pester.Client
}

func (c *client) GetJobHistoryBuildIDs(ctx context.Context, jobURL string) (buildIDs []string, err error) {

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, jobURL, nil)
	if err != nil {
		return nil, err
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "Fetching job history %v failed", jobURL)
	}
	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Fetching job history %v failed with status code %v", jobURL, response.StatusCode)
	}

	return ParseBuildIDs(response.Body)
}

// ParseBuildIDs returns the distinct build ids (numbers of 15 digits or more) in a job history page, in order of appearance.
// Ids show up in links, table cells and the embedded build list script, so attribute values and text are both scanned.
func ParseBuildIDs(r io.Reader) (buildIDs []string, err error) {

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "Parsing job history html failed")
	}

	seen := map[string]bool{}
	buildIDs = []string{}

	collect := func(value string) {
		for _, match := range buildIDRegex.FindAllString(value, -1) {
			if !seen[match] {
				seen[match] = true
				buildIDs = append(buildIDs, match)
			}
		}
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			for _, attr := range n.Attr {
				collect(attr.Val)
			}
		case html.TextNode:
			collect(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	for _, n := range doc.Nodes {
		walk(n)
	}

	return buildIDs, nil
}

// JobNameFromURL returns the last path segment of a job history url, which is the prow job name
func JobNameFromURL(jobURL string) (string, error) {
	parts := strings.Split(strings.TrimRight(jobURL, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-1] == "" {
		return "", fmt.Errorf("%v: %w", jobURL, ErrInvalidJobURL)
	}
	return parts[len(parts)-1], nil
}
