package logilica

import (
	"context"
	"errors"
	"fmt"

	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/logilicaapi"
	"github.com/rs/zerolog/log"
)

var (
	// ErrRepoNotFound is returned when logilica has no repository with the record's full name
	ErrRepoNotFound = errors.New("The repository is not known to Logilica")
)

// Service uploads build records to logilica
//
//go:generate mockgen -package=logilica -destination ./mock.go -source=service.go
type Service interface {
	ResolveRepositoryID(ctx context.Context, repoFullName string) (repoID string, err error)
	UploadBuild(ctx context.Context, record api.BuildRecord) (err error)
}

// NewService returns a logilica.Service; sleeper is only set in tests, nil uses api.Sleep
func NewService(config *api.Config, logilicaapiClient logilicaapi.Client, sleeper api.Sleeper) Service {
	return &service{
		config:            config,
		logilicaapiClient: logilicaapiClient,
		sleeper:           sleeper,
	}
}

type service struct {
	config            *api.Config
	logilicaapiClient logilicaapi.Client
	sleeper           api.Sleeper
}

func (s *service) ResolveRepositoryID(ctx context.Context, repoFullName string) (repoID string, err error) {

	repositories, err := s.logilicaapiClient.GetRepositories(ctx)
	if err != nil {
		return "", err
	}

	for _, repository := range repositories {
		if repository.Name == repoFullName {
			return repository.ID, nil
		}
	}

	return "", fmt.Errorf("%v: %w", repoFullName, ErrRepoNotFound)
}

func (s *service) UploadBuild(ctx context.Context, record api.BuildRecord) (err error) {

	if err = record.Validate(); err != nil {
		return api.NewFatalError(err)
	}

	retryConfig := api.RetryConfig{
		Attempts: s.config.Logilica.UploadAttempts,
		Delay:    s.config.Logilica.UploadDelay,
		Sleeper:  s.sleeper,
	}

	payload := NewCIBuildPayload(record)

	err = api.Retry(ctx, retryConfig, func(ctx context.Context, attempt int) error {
		// resolved on every attempt
		repoID, err := s.ResolveRepositoryID(ctx, record.RepoFullName)
		if err != nil {
			return err
		}

		return s.logilicaapiClient.CreateBuild(ctx, repoID, payload)
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("repo", record.RepoFullName).
		Str("originalId", record.OriginalID).
		Str("conclusion", record.Conclusion.String()).
		Msgf("Uploaded build %v for %v to Logilica", record.OriginalID, record.RepoFullName)

	return nil
}
