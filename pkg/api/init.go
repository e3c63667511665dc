package api

import (
	"io"
	stdlog "log"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jprom "github.com/uber/jaeger-lib/metrics/prometheus"
)

// InitLogging sets up json logging to stdout with a severity field for stackdriver
func InitLogging(app, version string, debug bool) {

	// log as severity for stackdriver logging to recognize the level
	zerolog.LevelFieldName = "severity"

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// set some default fields added to all logs
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", app).
		Str("version", version).
		Logger()

	// use zerolog for any logs sent via standard log library
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	log.Info().
		Str("goVersion", runtime.Version()).
		Msgf("Starting %v version %v...", app, version)
}

// InitTracing configures a global jaeger tracer from the JAEGER_* environment variables; close the returned closer to flush spans on exit
func InitTracing(app string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = app
	}

	closer, err := cfg.InitGlobalTracer(cfg.ServiceName, jaegercfg.Metrics(jprom.New()))
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}
