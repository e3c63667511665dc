package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/cloudstorage"
	"github.com/estafette/estafette-ci-relay/pkg/clients/githubapi"
	"github.com/estafette/estafette-ci-relay/pkg/clients/logilicaapi"
	"github.com/estafette/estafette-ci-relay/pkg/clients/prowapi"
	"github.com/estafette/estafette-ci-relay/pkg/clients/tracker"
	"github.com/estafette/estafette-ci-relay/pkg/services/backfill"
	"github.com/estafette/estafette-ci-relay/pkg/services/logilica"
	"github.com/estafette/estafette-ci-relay/pkg/services/prow"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const appName = "pr-uploader"

var (
	version string
)

var (
	// flags
	configFilePath = kingpin.Flag("config-file-path", "The path to an optional yaml config file.").Default("config.yaml").Envar("CONFIG_FILE_PATH").String()
	repo           = kingpin.Flag("repo", "The github repository in owner/name format.").Required().String()
	githubToken    = kingpin.Flag("token", "The github token used to read pull requests and commit statuses.").Envar("GITHUB_TOKEN").String()
	logilicaToken  = kingpin.Flag("logilica-token", "The token for the Logilica import api.").Envar("LOGILICA_TOKEN").String()
	startPR        = kingpin.Flag("start-pr", "The first pull request number to upload.").Default("1").Int()
	endPR          = kingpin.Flag("end-pr", "The last pull request number to upload, defaults to the latest pull request.").Int()
	ciContext      = kingpin.Flag("ci-context", "The commit status context prefix of the ci job to upload.").Default("ci/prow/e2e").String()
	trackerDir     = kingpin.Flag("tracker-dir", "The directory holding the files with processed pull requests.").Default("./tracker").String()
	delay          = kingpin.Flag("delay", "The delay between pull requests.").Default("500ms").Duration()
	dryRun         = kingpin.Flag("dry-run", "Log the payloads instead of uploading them.").Bool()
	debug          = kingpin.Flag("debug", "Log at debug level.").Envar("DEBUG").Bool()
)

func main() {

	// .env is optional
	_ = godotenv.Load()

	kingpin.Parse()

	api.InitLogging(appName, version, *debug)

	config, err := api.NewConfigReader(nil, os.Environ()).ReadConfigFromFile(*configFilePath, false)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed reading configuration")
	}

	if *githubToken != "" {
		config.Github.Token = *githubToken
	}
	if *logilicaToken != "" {
		config.Logilica.Token = *logilicaToken
	}
	config.Backfill.TrackerDir = *trackerDir
	config.Backfill.ItemDelay = *delay

	if !*dryRun {
		if _, err := config.Logilica.RequireToken(); err != nil {
			log.Fatal().Err(err).Msg("A logilica token is required unless running with --dry-run")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	backfillService := newBackfillService(ctx, config)

	start := time.Now()
	summary, err := backfillService.BackfillPullRequests(ctx, backfill.PullRequestOptions{
		Repo:          *repo,
		StartPR:       *startPR,
		EndPR:         *endPR,
		ContextPrefix: *ciContext,
		DryRun:        *dryRun,
	})

	log.Info().Interface("summary", summary).Dur("duration", time.Since(start)).Msgf("Finished uploading pull requests for %v: %v", *repo, summary)

	if err != nil {
		log.Fatal().Err(err).Msg("Uploading pull requests failed")
	}
}

func newBackfillService(ctx context.Context, config *api.Config) backfill.Service {

	storageClient, err := cloudstorage.NewStorageClient(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating google cloud storage client failed")
	}

	cloudstorageClient := cloudstorage.NewLoggingClient(cloudstorage.NewClient(storageClient))
	githubapiClient := githubapi.NewLoggingClient(githubapi.NewClient(config))
	logilicaapiClient := logilicaapi.NewLoggingClient(logilicaapi.NewClient(config))
	trackerClient := tracker.NewLoggingClient(tracker.NewClient(config.Backfill.TrackerDir))

	prowService := prow.NewLoggingService(prow.NewService(config, cloudstorageClient))
	logilicaService := logilica.NewLoggingService(logilica.NewService(config, logilicaapiClient, nil))

	return backfill.NewLoggingService(backfill.NewService(config, githubapiClient, prowapi.NewLoggingClient(prowapi.NewClient()), trackerClient, prowService, logilicaService, nil))
}
