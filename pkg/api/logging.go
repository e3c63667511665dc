package api

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// HandleLogError logs errors intercepted by the logging decorators, except for the expected ones passed as ignoredErrors
func HandleLogError(packageName, interfaceName, funcName string, err error, ignoredErrors ...error) {
	if err == nil {
		return
	}

	for _, e := range ignoredErrors {
		if errors.Is(err, e) {
			return
		}
	}

	log.Debug().Err(err).Msgf("%v.%v.%v decorator intercepted error", packageName, interfaceName, funcName)
}
