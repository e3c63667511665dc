package backfill

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
	"github.com/estafette/estafette-ci-relay/pkg/clients/prowapi"
	"github.com/estafette/estafette-ci-relay/pkg/clients/tracker"
	"github.com/estafette/estafette-ci-relay/pkg/services/logilica"
	"github.com/estafette/estafette-ci-relay/pkg/services/prow"
	"github.com/rs/zerolog/log"
)

// Service uploads historical ci runs that happened before the webhook was in place
type Service interface {
	BackfillPullRequests(ctx context.Context, options PullRequestOptions) (summary Summary, err error)
	BackfillJobHistory(ctx context.Context, options JobHistoryOptions) (summary Summary, err error)
}

// NewService returns a backfill.Service; sleeper is only set in tests, nil uses api.Sleep
func NewService(config *api.Config, githubapiClient githubapi.Client, prowapiClient prowapi.Client, trackerClient tracker.Client, prowService prow.Service, logilicaService logilica.Service, sleeper api.Sleeper) Service {
	if sleeper == nil {
		sleeper = api.Sleep
	}

	return &service{
		config:          config,
		githubapiClient: githubapiClient,
		prowapiClient:   prowapiClient,
		trackerClient:   trackerClient,
		prowService:     prowService,
		logilicaService: logilicaService,
		sleeper:         sleeper,
	}
}

type service struct {
	config          *api.Config
	githubapiClient githubapi.Client
	prowapiClient   prowapi.Client
	trackerClient   tracker.Client
	prowService     prow.Service
	logilicaService logilica.Service
	sleeper         api.Sleeper
}

func (s *service) BackfillPullRequests(ctx context.Context, options PullRequestOptions) (summary Summary, err error) {

	if options.StartPR <= 0 {
		options.StartPR = 1
	}
	if options.EndPR <= 0 {
		options.EndPR, err = s.githubapiClient.GetLatestPullRequestNumber(ctx, options.Repo)
		if err != nil {
			return summary, err
		}
		log.Info().Msgf("Latest pull request for %v is #%v", options.Repo, options.EndPR)
	}
	if options.StartPR > options.EndPR {
		return summary, fmt.Errorf("start %v is after end %v: %w", options.StartPR, options.EndPR, ErrInvalidRange)
	}

	discovered := []string{}
	for number := options.StartPR; number <= options.EndPR; number++ {
		discovered = append(discovered, strconv.Itoa(number))
	}

	trackerName := pullRequestTrackerName(options.Repo)

	return s.run(ctx, trackerName, discovered, 0, options.DryRun, func(ctx context.Context, id string) (*api.BuildRecord, error) {
		number, _ := strconv.Atoi(id)
		return s.normalizePullRequest(ctx, options, number)
	})
}

func (s *service) normalizePullRequest(ctx context.Context, options PullRequestOptions, number int) (record *api.BuildRecord, err error) {

	pullRequest, err := s.githubapiClient.GetPullRequest(ctx, options.Repo, number)
	if err != nil {
		if errors.Is(err, githubapi.ErrNotFound) {
			return nil, fmt.Errorf("pull request #%v: %w", number, api.ErrNotRelevant)
		}
		return nil, err
	}

	if pullRequest.Head.Sha == "" {
		return nil, fmt.Errorf("pull request #%v has no head commit: %w", number, api.ErrNotRelevant)
	}

	combinedStatus, err := s.githubapiClient.GetCommitStatus(ctx, options.Repo, pullRequest.Head.Sha)
	if err != nil {
		return nil, err
	}

	status, found := combinedStatus.FindByContextPrefix(options.ContextPrefix)
	if !found {
		return nil, fmt.Errorf("pull request #%v has no %v status: %w", number, options.ContextPrefix, api.ErrNotRelevant)
	}

	return s.prowService.NormalizePullRequestStatus(ctx, options.Repo, *pullRequest, *status)
}

func (s *service) BackfillJobHistory(ctx context.Context, options JobHistoryOptions) (summary Summary, err error) {

	jobName, err := prowapi.JobNameFromURL(options.JobURL)
	if err != nil {
		return summary, err
	}

	discovered, err := s.prowapiClient.GetJobHistoryBuildIDs(ctx, options.JobURL)
	if err != nil {
		return summary, err
	}

	log.Info().Msgf("Found %v builds in job history of %v", len(discovered), jobName)

	return s.run(ctx, jobName, discovered, options.Limit, options.DryRun, func(ctx context.Context, buildID string) (*api.BuildRecord, error) {
		return s.prowService.NormalizeHistoricalBuild(ctx, jobName, buildID)
	})
}

// run normalizes and uploads every unprocessed id, one at a time with a fixed delay in between
func (s *service) run(ctx context.Context, trackerName string, discovered []string, limit int, dryRun bool, normalize func(ctx context.Context, id string) (*api.BuildRecord, error)) (summary Summary, err error) {

	processedIDs, err := s.trackerClient.Load(ctx, trackerName)
	if err != nil {
		return summary, err
	}
	processed := NewProcessedSet(processedIDs)

	unprocessed := FilterUnprocessed(processed, discovered)

	summary.Discovered = len(discovered)
	summary.AlreadyProcessed = len(discovered) - len(unprocessed)

	if limit > 0 && len(unprocessed) > limit {
		log.Info().Msgf("Processing %v of %v new items due to limit", limit, len(unprocessed))
		unprocessed = unprocessed[:limit]
	}

	summary.Total = len(unprocessed)

	for i, id := range unprocessed {
		if i > 0 {
			if err = s.sleeper(ctx, s.config.Backfill.ItemDelay); err != nil {
				return summary, err
			}
		}

		logger := log.With().Str("tracker", trackerName).Str("id", id).Logger()
		logger.Info().Msgf("[%v/%v] Processing %v", i+1, len(unprocessed), id)

		record, normalizeErr := normalize(ctx, id)
		if normalizeErr != nil {
			if errors.Is(normalizeErr, api.ErrNotRelevant) {
				logger.Info().Err(normalizeErr).Msgf("Skipping %v", id)
				summary.Skipped++
				continue
			}
			logger.Warn().Err(normalizeErr).Msgf("Failed fetching build data for %v", id)
			summary.Failed++
			continue
		}

		if dryRun {
			logger.Info().
				Interface("payload", logilica.NewCIBuildPayload(*record)).
				Msgf("[DRY RUN] Would upload build %v for %v", record.OriginalID, record.RepoFullName)
			summary.Succeeded++
			continue
		}

		if err := s.logilicaService.UploadBuild(ctx, *record); err != nil {
			logger.Error().Err(err).Msgf("Failed uploading build %v", record.OriginalID)
			summary.Failed++
			continue
		}

		processed.Add(id)
		if err := s.trackerClient.Append(ctx, trackerName, id); err != nil {
			logger.Error().Err(err).Msgf("Failed recording %v as processed", id)
		}
		summary.Succeeded++
	}

	return summary, nil
}
