package githubapi

import (
	"fmt"
	"strings"
	"time"
)

// Repository represents a Github repository
type Repository struct {
	HTMLURL  string `json:"html_url"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// User represents a Github account
type User struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// GitAuthor is the author as recorded in the git commit itself
type GitAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"`
}

// GitCommit is the git level commit information
type GitCommit struct {
	Author  GitAuthor `json:"author"`
	Message string    `json:"message"`
}

// Commit represents a Github commit, linking the git author to a Github account
type Commit struct {
	Sha    string    `json:"sha"`
	Commit GitCommit `json:"commit"`
	Author *User     `json:"author"`
}

// StatusEvent represents a Github webhook status event
type StatusEvent struct {
	ID          int64       `json:"id"`
	Sha         string      `json:"sha"`
	Name        string      `json:"name"`
	TargetURL   string      `json:"target_url"`
	Context     string      `json:"context"`
	Description string      `json:"description"`
	State       string      `json:"state"`
	Commit      Commit      `json:"commit"`
	Repository  *Repository `json:"repository"`
	Sender      *User       `json:"sender"`
}

// AuthorLogin returns the Github login of the commit author, empty if the author has no Github account
func (se *StatusEvent) AuthorLogin() string {
	if se.Commit.Author == nil {
		return ""
	}
	return se.Commit.Author.Login
}

// RepoFullName returns owner/name of the repository the status was set on
func (se *StatusEvent) RepoFullName() string {
	if se.Name != "" {
		return se.Name
	}
	if se.Repository != nil {
		return se.Repository.FullName
	}
	return ""
}

// CheckRun represents a Github check run
type CheckRun struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	HeadSha     string `json:"head_sha"`
	Status      string `json:"status"`
	Conclusion  string `json:"conclusion"`
	DetailsURL  string `json:"details_url"`
	HTMLURL     string `json:"html_url"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
}

// StartedAtUnix parses started_at as RFC3339 and returns epoch seconds
func (cr *CheckRun) StartedAtUnix() (int64, error) {
	return parseTimestamp("started_at", cr.StartedAt)
}

// CompletedAtUnix parses completed_at as RFC3339 and returns epoch seconds
func (cr *CheckRun) CompletedAtUnix() (int64, error) {
	return parseTimestamp("completed_at", cr.CompletedAt)
}

func parseTimestamp(field, value string) (int64, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q: %w", field, value, err)
	}
	return t.Unix(), nil
}

// CheckRunEvent represents a Github webhook check_run event
type CheckRunEvent struct {
	Action     string      `json:"action"`
	CheckRun   CheckRun    `json:"check_run"`
	Repository *Repository `json:"repository"`
	Sender     *User       `json:"sender"`
}

// PullRequestHead is the branch and commit a pull request is built from
type PullRequestHead struct {
	Ref string `json:"ref"`
	Sha string `json:"sha"`
}

// PullRequest represents a Github pull request
type PullRequest struct {
	Number  int             `json:"number"`
	HTMLURL string          `json:"html_url"`
	State   string          `json:"state"`
	Title   string          `json:"title"`
	User    User            `json:"user"`
	Head    PullRequestHead `json:"head"`
}

// CommitStatus is a single status set on a commit
type CommitStatus struct {
	ID          int64  `json:"id"`
	Context     string `json:"context"`
	State       string `json:"state"`
	TargetURL   string `json:"target_url"`
	Description string `json:"description"`
}

// CombinedStatus is the combined status for a commit, with the latest status per context
type CombinedStatus struct {
	State    string         `json:"state"`
	Sha      string         `json:"sha"`
	Statuses []CommitStatus `json:"statuses"`
}

// FindByContextPrefix returns the first status whose context starts with prefix
func (cs *CombinedStatus) FindByContextPrefix(prefix string) (status *CommitStatus, found bool) {
	for i := range cs.Statuses {
		if strings.HasPrefix(cs.Statuses[i].Context, prefix) {
			return &cs.Statuses[i], true
		}
	}
	return nil, false
}
