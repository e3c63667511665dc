package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverrideFromEnv(t *testing.T) {

	t.Run("DoesNotOverrideConfigIfNoEnvironmentVariablesStartWithCapitalizedPrefixUnderscore", func(t *testing.T) {

		var config struct {
			MyValue string
		}

		// act
		err := OverrideFromEnv(&config, "prefix", []string{"MYVALUE=bye bye"})

		assert.Nil(t, err)
		assert.Equal(t, "", config.MyValue)
	})

	t.Run("OverridesConfigFieldIfEnvironmentVariableMatchingCapitalizedPrefixUnderscoreFieldNameExists", func(t *testing.T) {

		var config struct {
			MyValue string
		}
		config.MyValue = "hi there"

		// act
		err := OverrideFromEnv(&config, "prefix", []string{"PREFIX_MYVALUE=bye bye"})

		assert.Nil(t, err)
		assert.Equal(t, "bye bye", config.MyValue)
	})

	t.Run("UsesEnvTagForEnvironmentVariableName", func(t *testing.T) {

		var config struct {
			MyValue string `env:"other"`
		}

		// act
		err := OverrideFromEnv(&config, "prefix", []string{"PREFIX_OTHER=tagged"})

		assert.Nil(t, err)
		assert.Equal(t, "tagged", config.MyValue)
	})

	t.Run("InitializesNilNestedStructPointers", func(t *testing.T) {

		config := &Config{}

		// act
		err := OverrideFromEnv(config, "relay", []string{"RELAY_LOGILICA_TOKEN=abc", "RELAY_GITHUB_WEBHOOKSECRET=def"})

		assert.Nil(t, err)
		if assert.NotNil(t, config.Logilica) && assert.NotNil(t, config.Github) {
			assert.Equal(t, "abc", config.Logilica.Token)
			assert.Equal(t, "def", config.Github.WebhookSecret)
		}
		assert.Nil(t, config.Backfill)
	})

	t.Run("ParsesBoolsIntsDurationsAndStringSlices", func(t *testing.T) {

		config := &Config{}

		// act
		err := OverrideFromEnv(config, "relay", []string{
			"RELAY_CLOUDSTORAGE_AUTHENTICATED=true",
			"RELAY_LOGILICA_UPLOADATTEMPTS=3",
			"RELAY_LOGILICA_UPLOADDELAY=250ms",
			"RELAY_GITHUB_STATUSCONTEXTS=ci/prow/e2e, ci/prow/unit",
		})

		assert.Nil(t, err)
		assert.True(t, config.CloudStorage.Authenticated)
		assert.Equal(t, 3, config.Logilica.UploadAttempts)
		assert.Equal(t, 250*time.Millisecond, config.Logilica.UploadDelay)
		assert.Equal(t, []string{"ci/prow/e2e", "ci/prow/unit"}, config.Github.StatusContexts)
	})

	t.Run("ReturnsErrorForUnparsableValue", func(t *testing.T) {

		config := &Config{}

		// act
		err := OverrideFromEnv(config, "relay", []string{"RELAY_LOGILICA_UPLOADATTEMPTS=seven"})

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrNotPtrForValue", func(t *testing.T) {

		config := Config{}

		// act
		err := OverrideFromEnv(config, "relay", []string{"RELAY_LOGILICA_TOKEN=abc"})

		assert.ErrorIs(t, err, ErrNotPtr)
	})
}
