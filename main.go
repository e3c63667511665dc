package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/estafette/estafette-ci-relay/pkg/api"
	"github.com/estafette/estafette-ci-relay/pkg/clients/cloudstorage"
	"github.com/estafette/estafette-ci-relay/pkg/clients/logilicaapi"
	"github.com/estafette/estafette-ci-relay/pkg/services/github"
	"github.com/estafette/estafette-ci-relay/pkg/services/logilica"
	"github.com/estafette/estafette-ci-relay/pkg/services/prow"
	crypt "github.com/estafette/estafette-ci-crypt"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const appName = "estafette-ci-relay"

var (
	version string
)

var (
	// flags
	configFilePath      = kingpin.Flag("config-file-path", "The path to yaml config file configuring this application.").Default("/configs/config.yaml").Envar("CONFIG_FILE_PATH").String()
	secretDecryptionKey = kingpin.Flag("secret-decryption-key", "The AES-256 key used to decrypt secrets that have been encrypted with it.").Envar("SECRET_DECRYPTION_KEY").String()
	githubWebhookSecret = kingpin.Flag("github-webhook-secret", "The secret to verify webhook authenticity.").Envar("GITHUB_SECRET").String()
	logilicaToken       = kingpin.Flag("logilica-token", "The token for the Logilica import api.").Envar("LOGILICA_TOKEN").String()
	debug               = kingpin.Flag("debug", "Log at debug level.").Envar("DEBUG").Bool()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	// configure json logging
	api.InitLogging(appName, version, *debug)

	// configure tracing
	closer := api.InitTracing(appName)
	defer closer.Close()

	config := readConfig()

	// create context to cancel on shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// start prometheus
	go startPrometheus(config)

	handler := getHandler(ctx, config)

	srv := configureGinGonic(config, handler)

	// wait for graceful shutdown to finish
	<-sigs
	log.Debug().Msg("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Graceful server shutdown failed")
	}

	log.Info().Msg("Server gracefully stopped")
}

func readConfig() *api.Config {

	configReader := api.NewConfigReader(crypt.NewSecretHelper(*secretDecryptionKey, false), os.Environ())

	config, err := configReader.ReadConfigFromFile(*configFilePath, *secretDecryptionKey != "")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed reading configuration")
	}

	if *githubWebhookSecret != "" {
		config.Github.WebhookSecret = *githubWebhookSecret
	}
	if *logilicaToken != "" {
		config.Logilica.Token = *logilicaToken
	}

	// both are only required once an event comes in, so the relay can still serve probes
	if config.Github.WebhookSecret == "" {
		log.Warn().Msg("No github webhook secret configured, all webhook deliveries will be rejected")
	}
	if config.Logilica.Token == "" {
		log.Warn().Msg("No logilica token configured, uploads will fail")
	}

	return config
}

func startPrometheus(config *api.Config) {
	log.Debug().
		Str("port", config.Server.MetricsListenAddress).
		Str("path", config.Server.MetricsPath).
		Msg("Serving Prometheus metrics...")

	mux := http.NewServeMux()
	mux.Handle(config.Server.MetricsPath, promhttp.Handler())

	if err := http.ListenAndServe(config.Server.MetricsListenAddress, mux); err != nil {
		log.Fatal().Err(err).Msg("Starting Prometheus listener failed")
	}
}

func getHandler(ctx context.Context, config *api.Config) github.Handler {

	storageClient, err := cloudstorage.NewStorageClient(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating google cloud storage client failed")
	}

	var cloudstorageClient cloudstorage.Client
	{
		cloudstorageClient = cloudstorage.NewClient(storageClient)
		cloudstorageClient = cloudstorage.NewTracingClient(cloudstorageClient)
		cloudstorageClient = cloudstorage.NewLoggingClient(cloudstorageClient)
		cloudstorageClient = cloudstorage.NewMetricsClient(cloudstorageClient, api.NewRequestCounter("cloudstorage_client"), api.NewRequestHistogram("cloudstorage_client"))
	}

	var logilicaapiClient logilicaapi.Client
	{
		logilicaapiClient = logilicaapi.NewClient(config)
		logilicaapiClient = logilicaapi.NewTracingClient(logilicaapiClient)
		logilicaapiClient = logilicaapi.NewLoggingClient(logilicaapiClient)
		logilicaapiClient = logilicaapi.NewMetricsClient(logilicaapiClient, api.NewRequestCounter("logilicaapi_client"), api.NewRequestHistogram("logilicaapi_client"))
	}

	var prowService prow.Service
	{
		prowService = prow.NewService(config, cloudstorageClient)
		prowService = prow.NewTracingService(prowService)
		prowService = prow.NewLoggingService(prowService)
		prowService = prow.NewMetricsService(prowService, api.NewRequestCounter("prow_service"), api.NewRequestHistogram("prow_service"))
	}

	var logilicaService logilica.Service
	{
		logilicaService = logilica.NewService(config, logilicaapiClient, nil)
		logilicaService = logilica.NewTracingService(logilicaService)
		logilicaService = logilica.NewLoggingService(logilicaService)
		logilicaService = logilica.NewMetricsService(logilicaService, api.NewRequestCounter("logilica_service"), api.NewRequestHistogram("logilica_service"))
	}

	var githubService github.Service
	{
		githubService = github.NewService(config, prowService, logilicaService)
		githubService = github.NewTracingService(githubService)
		githubService = github.NewLoggingService(githubService)
		githubService = github.NewMetricsService(githubService, api.NewRequestCounter("github_service"), api.NewRequestHistogram("github_service"))
	}

	return github.NewHandler(githubService)
}

func configureGinGonic(config *api.Config, githubHandler github.Handler) *http.Server {

	router := newRouter(githubHandler)

	// instantiate servers instead of using router.Run in order to handle graceful shutdown
	srv := &http.Server{
		Addr:           config.Server.ListenAddress,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   5 * time.Minute,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Debug().Str("address", config.Server.ListenAddress).Msg("Serving api calls...")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Starting gin router failed")
		}
	}()

	return srv
}

func newRouter(githubHandler github.Handler) *gin.Engine {

	// run gin in release mode and other defaults
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = log.Logger
	gin.DisableConsoleColor()

	// creates a router without any middleware by default
	router := gin.New()

	router.Use(api.ZeroLogMiddleware())
	router.Use(api.OpenTracingMiddleware())

	// recovery middleware recovers from any panics and writes a 500 if there was one.
	router.Use(gin.Recovery())

	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.POST("/api/integrations/github/events", githubHandler.Handle)
	router.POST("/webhook", githubHandler.Handle)

	// liveness and readiness
	router.GET("/liveness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm alive!")
	})
	router.GET("/readiness", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm ready!")
	})

	return router
}
