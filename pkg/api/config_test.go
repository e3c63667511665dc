package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadConfigFromFile(t *testing.T) {

	t.Run("ReadsYamlAndAppliesDefaults", func(t *testing.T) {

		configReader := NewConfigReader(nil, []string{})

		// act
		config, err := configReader.ReadConfigFromFile("test-config.yaml", false)

		assert.Nil(t, err)
		assert.Equal(t, ":8080", config.Server.ListenAddress)
		assert.Equal(t, ":9001", config.Server.MetricsListenAddress)
		assert.Equal(t, "m1gw5wmje424dmfvpb72ny6vjnubw79jvi7dlw2h", config.Github.WebhookSecret)
		assert.Equal(t, []string{"ci/prow/e2e"}, config.Github.StatusContexts)
		assert.Equal(t, []string{"konflux"}, config.Github.CheckRunMarkers)
		assert.Equal(t, "origin-ci-test", config.CloudStorage.DefaultBucket)
		assert.False(t, config.CloudStorage.Authenticated)
		assert.Equal(t, "lgca-token", config.Logilica.Token)
		assert.Equal(t, 7, config.Logilica.UploadAttempts)
		assert.Equal(t, 2*time.Second, config.Logilica.UploadDelay)
		assert.Equal(t, 250*time.Millisecond, config.Backfill.ItemDelay)
		assert.Equal(t, "openshift/unknown", config.Backfill.DefaultRepo)
	})

	t.Run("OverridesFileValuesWithEnvironmentVariables", func(t *testing.T) {

		configReader := NewConfigReader(nil, []string{"RELAY_LOGILICA_TOKEN=from-env", "RELAY_LOGILICA_UPLOADATTEMPTS=3"})

		// act
		config, err := configReader.ReadConfigFromFile("test-config.yaml", false)

		assert.Nil(t, err)
		assert.Equal(t, "from-env", config.Logilica.Token)
		assert.Equal(t, 3, config.Logilica.UploadAttempts)
	})

	t.Run("ReturnsDefaultsIfFileDoesNotExist", func(t *testing.T) {

		configReader := NewConfigReader(nil, []string{})

		// act
		config, err := configReader.ReadConfigFromFile("does-not-exist.yaml", false)

		assert.Nil(t, err)
		assert.Equal(t, ":5001", config.Server.ListenAddress)
		assert.Equal(t, "https://api.github.com", config.Github.APIBaseURL)
		assert.Equal(t, []string{"ci/prow/e2e", "ci/prow/images"}, config.Github.StatusContexts)
		assert.Equal(t, "test-platform-results", config.CloudStorage.DefaultBucket)
		assert.Equal(t, "https://logilica.io/api/import/v1", config.Logilica.BaseURL)
		assert.Equal(t, "redhat", config.Logilica.Domain)
		assert.Equal(t, 7, config.Logilica.UploadAttempts)
		assert.Equal(t, 5*time.Second, config.Logilica.UploadDelay)
		assert.Equal(t, time.Second, config.Backfill.ItemDelay)
		assert.Equal(t, "./tracker", config.Backfill.TrackerDir)
		assert.Equal(t, "OpenShift CI System", config.Backfill.SystemName)
		assert.Equal(t, "openshift-ci@redhat.com", config.Backfill.SystemEmail)
		assert.Equal(t, "openshift-ci-robot", config.Backfill.SystemAccountID)
	})

	t.Run("ReturnsErrorIfDefaultRepoIsNotOwnerSlashName", func(t *testing.T) {

		configReader := NewConfigReader(nil, []string{"RELAY_BACKFILL_DEFAULTREPO=unknown"})

		// act
		_, err := configReader.ReadConfigFromFile("does-not-exist.yaml", false)

		assert.NotNil(t, err)
	})
}

func TestRequireWebhookSecret(t *testing.T) {

	t.Run("ReturnsFatalErrMissingConfigIfEmpty", func(t *testing.T) {

		config := &Config{}
		config.SetDefaults()

		// act
		_, err := config.Github.RequireWebhookSecret()

		assert.ErrorIs(t, err, ErrMissingConfig)
		assert.True(t, IsFatal(err))
	})

	t.Run("ReturnsSecretIfSet", func(t *testing.T) {

		config := &GithubConfig{WebhookSecret: "abc"}

		// act
		secret, err := config.RequireWebhookSecret()

		assert.Nil(t, err)
		assert.Equal(t, "abc", secret)
	})
}

func TestRequireToken(t *testing.T) {

	t.Run("ReturnsFatalErrMissingConfigForNilConfig", func(t *testing.T) {

		var config *LogilicaConfig

		// act
		_, err := config.RequireToken()

		assert.ErrorIs(t, err, ErrMissingConfig)
		assert.True(t, IsFatal(err))
	})
}
