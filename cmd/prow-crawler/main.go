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

const appName = "prow-crawler"

var (
	version string
)

var (
	// flags
	configFilePath = kingpin.Flag("config-file-path", "The path to an optional yaml config file.").Default("config.yaml").Envar("CONFIG_FILE_PATH").String()
	jobURL         = kingpin.Flag("job-url", "The prow job history url, e.g. https://prow.ci.openshift.org/job-history/gs/test-platform-results/logs/<job>.").Required().String()
	logilicaToken  = kingpin.Flag("logilica-token", "The token for the Logilica import api.").Envar("LOGILICA_TOKEN").String()
	trackerDir     = kingpin.Flag("tracker-dir", "The directory holding the files with processed build ids.").Default("./tracker").String()
	limit          = kingpin.Flag("limit", "The maximum number of new builds to process in one run.").Default("50").Int()
	delay          = kingpin.Flag("delay", "The delay between builds.").Default("1s").Duration()
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

	storageClient, err := cloudstorage.NewStorageClient(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating google cloud storage client failed")
	}

	cloudstorageClient := cloudstorage.NewLoggingClient(cloudstorage.NewClient(storageClient))
	logilicaapiClient := logilicaapi.NewLoggingClient(logilicaapi.NewClient(config))
	prowapiClient := prowapi.NewLoggingClient(prowapi.NewClient())
	trackerClient := tracker.NewLoggingClient(tracker.NewClient(config.Backfill.TrackerDir))

	prowService := prow.NewLoggingService(prow.NewService(config, cloudstorageClient))
	logilicaService := logilica.NewLoggingService(logilica.NewService(config, logilicaapiClient, nil))

	backfillService := backfill.NewLoggingService(backfill.NewService(config, githubapi.NewClient(config), prowapiClient, trackerClient, prowService, logilicaService, nil))

	start := time.Now()
	summary, err := backfillService.BackfillJobHistory(ctx, backfill.JobHistoryOptions{
		JobURL: *jobURL,
		Limit:  *limit,
		DryRun: *dryRun,
	})

	log.Info().Interface("summary", summary).Dur("duration", time.Since(start)).Msgf("Finished crawling %v: %v", *jobURL, summary)

	if err != nil {
		log.Fatal().Err(err).Msg("Crawling job history failed")
	}
}
