package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Conclusion is the outcome of a ci run; it's stored lowercase and rendered capitalized
type Conclusion string

const (
	ConclusionSuccess Conclusion = "success"
	ConclusionFailure Conclusion = "failure"
)

const unknownCommitSha = "unknown"

var titleCaser = cases.Title(language.Und)

// ParseConclusion returns the conclusion for success or failure in any casing
func ParseConclusion(value string) (Conclusion, bool) {
	switch Conclusion(strings.ToLower(value)) {
	case ConclusionSuccess:
		return ConclusionSuccess, true
	case ConclusionFailure:
		return ConclusionFailure, true
	}
	return "", false
}

// ConclusionFromResult maps a prow result to a conclusion; anything but SUCCESS counts as a failure
func ConclusionFromResult(result string) Conclusion {
	if strings.ToUpper(result) == "SUCCESS" {
		return ConclusionSuccess
	}
	return ConclusionFailure
}

// String returns the capitalized conclusion, Success or Failure
func (c Conclusion) String() string {
	return titleCaser.String(string(c))
}

// TriggeredBy is the account that caused a ci run
type TriggeredBy struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	AccountID string `json:"accountId" validate:"required"`
}

// NewTriggeredBy fills in a noreply email for the account when email is empty
func NewTriggeredBy(name, email, accountID string) TriggeredBy {
	if accountID == "" {
		accountID = name
	}
	if name == "" {
		name = accountID
	}
	if email == "" {
		email = fmt.Sprintf("%v@users.noreply.github.com", accountID)
	}
	return TriggeredBy{
		Name:      name,
		Email:     email,
		AccountID: accountID,
	}
}

// BuildRecord is the normalized ci run that gets uploaded to logilica, whichever event it originated from
type BuildRecord struct {
	DetailsURL   string      `json:"detailsUrl" validate:"required"`
	Conclusion   Conclusion  `json:"conclusion" validate:"required,oneof=success failure"`
	StartedAt    int64       `json:"startedAt"`
	CompletedAt  int64       `json:"completedAt"`
	RepoFullName string      `json:"repoFullName" validate:"required,contains=/"`
	CommitSha    string      `json:"commitSha" validate:"required"`
	TriggeredBy  TriggeredBy `json:"triggeredBy"`
	OriginalID   string      `json:"originalId" validate:"required"`
	DisplayName  string      `json:"displayName" validate:"required"`
}

var recordValidator = validator.New()

// Validate checks all fields required downstream are set
func (r *BuildRecord) Validate() error {
	if r.CommitSha == "" {
		r.CommitSha = unknownCommitSha
	}
	if err := recordValidator.Struct(r); err != nil {
		return fmt.Errorf("invalid build record %v: %w", r.OriginalID, err)
	}
	return nil
}

// RepoURL returns the github url for the record's repository
func (r *BuildRecord) RepoURL() string {
	return fmt.Sprintf("https://github.com/%v", r.RepoFullName)
}

// CommitShaOrUnknown returns the first non-empty sha, or unknown
func CommitShaOrUnknown(shas ...string) string {
	for _, sha := range shas {
		if sha != "" {
			return sha
		}
	}
	return unknownCommitSha
}
