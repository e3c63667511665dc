package backfill

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRange is returned when the pull request range is empty
	ErrInvalidRange = errors.New("Invalid pull request range")
)

// ProcessedSet holds the ids of items that have been uploaded in earlier runs; it only grows
type ProcessedSet map[string]struct{}

// NewProcessedSet returns a set holding ids
func NewProcessedSet(ids []string) ProcessedSet {
	set := ProcessedSet{}
	for _, id := range ids {
		set.Add(id)
	}
	return set
}

func (s ProcessedSet) Add(id string) {
	s[id] = struct{}{}
}

func (s ProcessedSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// FilterUnprocessed returns the discovered ids not in processed, keeping their order
func FilterUnprocessed(processed ProcessedSet, discovered []string) []string {
	unprocessed := []string{}
	for _, id := range discovered {
		if !processed.Contains(id) {
			unprocessed = append(unprocessed, id)
		}
	}
	return unprocessed
}

// Summary counts the outcome of a backfill run
type Summary struct {
	Discovered       int
	AlreadyProcessed int
	Total            int
	Succeeded        int
	Skipped          int
	Failed           int
}

func (s Summary) String() string {
	return fmt.Sprintf("discovered %v, already processed %v, processed %v: %v succeeded, %v skipped, %v failed", s.Discovered, s.AlreadyProcessed, s.Total, s.Succeeded, s.Skipped, s.Failed)
}

// PullRequestOptions configures a pull request range backfill
type PullRequestOptions struct {
	Repo          string
	StartPR       int
	EndPR         int
	ContextPrefix string
	DryRun        bool
}

// JobHistoryOptions configures a prow job history crawl
type JobHistoryOptions struct {
	JobURL string
	Limit  int
	DryRun bool
}

// pullRequestTrackerName is the tracker holding the uploaded pull request numbers of a repository
func pullRequestTrackerName(repo string) string {
	return strings.ReplaceAll(repo, "/", "_") + "-pull-requests"
}
