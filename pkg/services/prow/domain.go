package prow

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDetailsURL is returned when a details url doesn't point into a storage bucket
	ErrInvalidDetailsURL = errors.New("The details url has no /gs/ segment")
)

const (
	finishedFileName  = "finished.json"
	startedFileName   = "started.json"
	displayNamePrefix = "OpenShift CI"
)

// ArtifactLocation is the bucket and object prefix holding a prow job run's artifacts
type ArtifactLocation struct {
	Bucket string
	Prefix string
}

// FinishedPath is the object path of finished.json
func (l ArtifactLocation) FinishedPath() string {
	return l.Prefix + "/" + finishedFileName
}

// StartedPath is the object path of started.json
func (l ArtifactLocation) StartedPath() string {
	return l.Prefix + "/" + startedFileName
}

// ParseArtifactLocation derives the artifact location from a prow details url such as
// https://prow.ci.openshift.org/view/gs/test-platform-results/pr-logs/pull/123/e2e-test/456
func ParseArtifactLocation(detailsURL string) (location ArtifactLocation, err error) {
	_, path, found := strings.Cut(detailsURL, "/gs/")
	if !found {
		return location, fmt.Errorf("%v: %w", detailsURL, ErrInvalidDetailsURL)
	}

	bucket, prefix, found := strings.Cut(strings.TrimSuffix(path, "/"), "/")
	if !found || bucket == "" || prefix == "" {
		return location, fmt.Errorf("%v has no bucket and object prefix: %w", detailsURL, ErrInvalidDetailsURL)
	}

	return ArtifactLocation{
		Bucket: bucket,
		Prefix: prefix,
	}, nil
}

// Finished is the subset of prow's finished.json the relay uses
type Finished struct {
	Timestamp int64                  `json:"timestamp"`
	Passed    *bool                  `json:"passed,omitempty"`
	Result    string                 `json:"result"`
	Revision  string                 `json:"revision,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Repo returns metadata.repo, empty if absent or not a string
func (f *Finished) Repo() string {
	if f.Metadata == nil {
		return ""
	}
	if repo, ok := f.Metadata["repo"].(string); ok {
		return repo
	}
	return ""
}

// Started is the subset of prow's started.json the relay uses
type Started struct {
	Timestamp  int64             `json:"timestamp"`
	RepoCommit string            `json:"repo-commit,omitempty"`
	Repos      map[string]string `json:"repos,omitempty"`
}

// Artifacts holds both documents of a prow job run
type Artifacts struct {
	Finished Finished
	Started  Started
}

// pathSegments splits a url into its path segments, ignoring a trailing slash
func pathSegments(url string) []string {
	return strings.Split(strings.TrimSuffix(url, "/"), "/")
}

// lastPathSegment returns the build id of a prow details url
func lastPathSegment(url string) string {
	segments := pathSegments(url)
	return segments[len(segments)-1]
}

// secondToLastPathSegment returns the job name of a prow details url
func secondToLastPathSegment(url string) string {
	segments := pathSegments(url)
	if len(segments) < 2 {
		return ""
	}
	return segments[len(segments)-2]
}

// lastHyphenToken returns the part of a job name after its last hyphen, e.g. e2e for pull-ci-org-repo-master-e2e
func lastHyphenToken(jobName string) string {
	if i := strings.LastIndex(jobName, "-"); i >= 0 {
		return jobName[i+1:]
	}
	return jobName
}

// DisplayName is the build name shown in logilica for a prow job
func DisplayName(jobName string) string {
	return fmt.Sprintf("%v %v", displayNamePrefix, lastHyphenToken(jobName))
}
