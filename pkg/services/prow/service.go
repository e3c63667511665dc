package prow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/cloudstorage"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
	foundation "github.com/estafette/estafette-foundation"
	"golang.org/x/sync/errgroup"
)

// Service turns github events and historical prow runs into build records
//
//go:generate mockgen -package=prow -destination ./mock.go -source=service.go
type Service interface {
	GetArtifacts(ctx context.Context, location ArtifactLocation) (artifacts *Artifacts, err error)
	NormalizeStatusEvent(ctx context.Context, event githubapi.StatusEvent) (record *api.BuildRecord, err error)
	NormalizeCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (record *api.BuildRecord, err error)
	NormalizePullRequestStatus(ctx context.Context, repoFullName string, pullRequest githubapi.PullRequest, status githubapi.CommitStatus) (record *api.BuildRecord, err error)
	NormalizeHistoricalBuild(ctx context.Context, jobName, buildID string) (record *api.BuildRecord, err error)
}

// NewService returns a prow.Service
func NewService(config *api.Config, cloudstorageClient cloudstorage.Client) Service {
	return &service{
		config:             config,
		cloudstorageClient: cloudstorageClient,
	}
}

type service struct {
	config             *api.Config
	cloudstorageClient cloudstorage.Client
}

func (s *service) GetArtifacts(ctx context.Context, location ArtifactLocation) (artifacts *Artifacts, err error) {

	artifacts = &Artifacts{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.cloudstorageClient.GetJSON(ctx, location.Bucket, location.FinishedPath(), &artifacts.Finished)
	})
	g.Go(func() error {
		return s.cloudstorageClient.GetJSON(ctx, location.Bucket, location.StartedPath(), &artifacts.Started)
	})

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return artifacts, nil
}

func (s *service) NormalizeStatusEvent(ctx context.Context, event githubapi.StatusEvent) (record *api.BuildRecord, err error) {

	if !foundation.StringArrayContains(s.config.Github.StatusContexts, event.Context) {
		return nil, fmt.Errorf("status context %v: %w", event.Context, api.ErrNotRelevant)
	}

	conclusion, ok := api.ParseConclusion(event.State)
	if !ok {
		return nil, fmt.Errorf("status %v in state %v: %w", event.Context, event.State, api.ErrNotRelevant)
	}

	location, err := ParseArtifactLocation(event.TargetURL)
	if err != nil {
		return nil, err
	}

	artifacts, err := s.GetArtifacts(ctx, location)
	if err != nil {
		return nil, err
	}

	author := event.Commit.Commit.Author

	record = &api.BuildRecord{
		DetailsURL:   event.TargetURL,
		Conclusion:   conclusion,
		StartedAt:    artifacts.Started.Timestamp,
		CompletedAt:  artifacts.Finished.Timestamp,
		RepoFullName: firstNonEmpty(artifacts.Finished.Repo(), event.RepoFullName()),
		CommitSha:    api.CommitShaOrUnknown(artifacts.Started.RepoCommit, event.Sha),
		TriggeredBy:  api.NewTriggeredBy(author.Name, author.Email, event.AuthorLogin()),
		OriginalID:   lastPathSegment(event.TargetURL),
		DisplayName:  DisplayName(secondToLastPathSegment(event.TargetURL)),
	}

	if err = record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *service) NormalizeCheckRunEvent(ctx context.Context, event githubapi.CheckRunEvent) (record *api.BuildRecord, err error) {

	checkRun := event.CheckRun

	if checkRun.Status != "completed" {
		return nil, fmt.Errorf("check run %v with status %v: %w", checkRun.Name, checkRun.Status, api.ErrNotRelevant)
	}

	conclusion, ok := api.ParseConclusion(checkRun.Conclusion)
	if !ok {
		return nil, fmt.Errorf("check run %v with conclusion %v: %w", checkRun.Name, checkRun.Conclusion, api.ErrNotRelevant)
	}

	if !s.matchesCheckRunMarker(checkRun) {
		return nil, fmt.Errorf("check run %v: %w", checkRun.Name, api.ErrNotRelevant)
	}

	startedAt, err := checkRun.StartedAtUnix()
	if err != nil {
		return nil, err
	}
	completedAt, err := checkRun.CompletedAtUnix()
	if err != nil {
		return nil, err
	}

	var login string
	if event.Sender != nil {
		login = event.Sender.Login
	}
	var repoFullName string
	if event.Repository != nil {
		repoFullName = event.Repository.FullName
	}

	record = &api.BuildRecord{
		DetailsURL:   firstNonEmpty(checkRun.DetailsURL, checkRun.HTMLURL),
		Conclusion:   conclusion,
		StartedAt:    startedAt,
		CompletedAt:  completedAt,
		RepoFullName: repoFullName,
		CommitSha:    api.CommitShaOrUnknown(checkRun.HeadSha),
		TriggeredBy:  api.NewTriggeredBy(login, "", login),
		OriginalID:   strconv.FormatInt(checkRun.ID, 10),
		DisplayName:  checkRun.Name,
	}

	if err = record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *service) NormalizePullRequestStatus(ctx context.Context, repoFullName string, pullRequest githubapi.PullRequest, status githubapi.CommitStatus) (record *api.BuildRecord, err error) {

	conclusion, ok := api.ParseConclusion(status.State)
	if !ok {
		return nil, fmt.Errorf("status %v in state %v: %w", status.Context, status.State, api.ErrNotRelevant)
	}

	location, err := ParseArtifactLocation(status.TargetURL)
	if err != nil {
		return nil, err
	}

	artifacts, err := s.GetArtifacts(ctx, location)
	if err != nil {
		return nil, err
	}

	user := pullRequest.User

	record = &api.BuildRecord{
		DetailsURL:   status.TargetURL,
		Conclusion:   conclusion,
		StartedAt:    artifacts.Started.Timestamp,
		CompletedAt:  artifacts.Finished.Timestamp,
		RepoFullName: firstNonEmpty(artifacts.Finished.Repo(), repoFullName),
		CommitSha:    api.CommitShaOrUnknown(artifacts.Started.RepoCommit, pullRequest.Head.Sha),
		TriggeredBy:  api.NewTriggeredBy(user.Name, user.Email, user.Login),
		OriginalID:   lastPathSegment(status.TargetURL),
		DisplayName:  DisplayName(secondToLastPathSegment(status.TargetURL)),
	}

	if err = record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *service) NormalizeHistoricalBuild(ctx context.Context, jobName, buildID string) (record *api.BuildRecord, err error) {

	location := ArtifactLocation{
		Bucket: s.config.CloudStorage.DefaultBucket,
		Prefix: fmt.Sprintf("logs/%v/%v", jobName, buildID),
	}

	artifacts, err := s.GetArtifacts(ctx, location)
	if err != nil {
		return nil, err
	}

	backfillConfig := s.config.Backfill

	record = &api.BuildRecord{
		DetailsURL:   fmt.Sprintf("%v/%v/%v/", strings.TrimSuffix(backfillConfig.GcsWebBaseURL, "/"), location.Bucket, location.Prefix),
		Conclusion:   api.ConclusionFromResult(artifacts.Finished.Result),
		StartedAt:    artifacts.Started.Timestamp,
		CompletedAt:  artifacts.Finished.Timestamp,
		RepoFullName: firstNonEmpty(artifacts.Finished.Repo(), backfillConfig.DefaultRepo),
		CommitSha:    api.CommitShaOrUnknown(artifacts.Started.RepoCommit),
		TriggeredBy:  api.NewTriggeredBy(backfillConfig.SystemName, backfillConfig.SystemEmail, backfillConfig.SystemAccountID),
		OriginalID:   buildID,
		DisplayName:  DisplayName(jobName),
	}

	if err = record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *service) matchesCheckRunMarker(checkRun githubapi.CheckRun) bool {
	name := strings.ToLower(checkRun.Name)
	detailsURL := strings.ToLower(checkRun.DetailsURL)

	for _, marker := range s.config.Github.CheckRunMarkers {
		marker = strings.ToLower(marker)
		if marker == "" {
			continue
		}
		if strings.Contains(name, marker) || strings.Contains(detailsURL, marker) {
			return true
		}
	}

	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
