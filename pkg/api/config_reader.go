package api

import (
	"errors"
	"io/fs"
	"os"

	crypt "github.com/estafette/estafette-ci-crypt"
	"github.com/rs/zerolog/log"
	yaml "gopkg.in/yaml.v2"
)

const envPrefix = "RELAY"

// ConfigReader reads the relay config from file and environment
type ConfigReader interface {
	ReadConfigFromFile(configPath string, decryptSecrets bool) (*Config, error)
}

type configReaderImpl struct {
	secretHelper         crypt.SecretHelper
	environmentVariables []string
}

// NewConfigReader returns a new api.ConfigReader; environmentVariables are usually os.Environ()
func NewConfigReader(secretHelper crypt.SecretHelper, environmentVariables []string) ConfigReader {
	return &configReaderImpl{
		secretHelper:         secretHelper,
		environmentVariables: environmentVariables,
	}
}

// ReadConfigFromFile reads the yaml config at configPath; a missing file results in a config made of defaults and env overrides
func (h *configReaderImpl) ReadConfigFromFile(configPath string, decryptSecrets bool) (config *Config, err error) {

	config = &Config{}

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		log.Info().Msgf("Reading %v file...", configPath)

		if decryptSecrets && h.secretHelper != nil {
			decryptedData, err := h.secretHelper.DecryptAllEnvelopes(string(data), "")
			if err != nil {
				return nil, err
			}
			data = []byte(decryptedData)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}

	case errors.Is(err, fs.ErrNotExist):
		log.Info().Msgf("Config file %v does not exist, using defaults and environment variables", configPath)

	default:
		return nil, err
	}

	// RELAY_GITHUB_WEBHOOKSECRET, RELAY_LOGILICA_TOKEN, etc
	if err = OverrideFromEnv(config, envPrefix, h.environmentVariables); err != nil {
		return nil, err
	}

	config.SetDefaults()

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
