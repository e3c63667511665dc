package api

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMissingConfig is returned when a required configuration value is absent at the point of use
	ErrMissingConfig = errors.New("required configuration value is missing")
)

// Config represents the configuration for the entire relay application
type Config struct {
	Server       *ServerConfig       `yaml:"server,omitempty"`
	Github       *GithubConfig       `yaml:"github,omitempty"`
	CloudStorage *CloudStorageConfig `yaml:"gcs,omitempty"`
	Logilica     *LogilicaConfig     `yaml:"logilica,omitempty"`
	Backfill     *BackfillConfig     `yaml:"backfill,omitempty"`
}

func (c *Config) SetDefaults() {
	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	c.Server.SetDefaults()

	if c.Github == nil {
		c.Github = &GithubConfig{}
	}
	c.Github.SetDefaults()

	if c.CloudStorage == nil {
		c.CloudStorage = &CloudStorageConfig{}
	}
	c.CloudStorage.SetDefaults()

	if c.Logilica == nil {
		c.Logilica = &LogilicaConfig{}
	}
	c.Logilica.SetDefaults()

	if c.Backfill == nil {
		c.Backfill = &BackfillConfig{}
	}
	c.Backfill.SetDefaults()
}

func (c *Config) Validate() (err error) {
	err = c.Server.Validate()
	if err != nil {
		return
	}

	err = c.Github.Validate()
	if err != nil {
		return
	}

	err = c.CloudStorage.Validate()
	if err != nil {
		return
	}

	err = c.Logilica.Validate()
	if err != nil {
		return
	}

	err = c.Backfill.Validate()
	if err != nil {
		return
	}

	return nil
}

// ServerConfig configures the addresses the relay listens on
type ServerConfig struct {
	ListenAddress        string `yaml:"listenAddress"`
	MetricsListenAddress string `yaml:"metricsListenAddress"`
	MetricsPath          string `yaml:"metricsPath"`
}

func (c *ServerConfig) SetDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = ":5001"
	}
	if c.MetricsListenAddress == "" {
		c.MetricsListenAddress = ":9001"
	}
	if c.MetricsPath == "" {
		c.MetricsPath = "/metrics"
	}
}

func (c *ServerConfig) Validate() (err error) {
	if !strings.HasPrefix(c.MetricsPath, "/") {
		return errors.New("Configuration item 'server.metricsPath' has to start with a slash")
	}

	return nil
}

// GithubConfig is used to configure the github webhook integration and the api client used for backfilling
type GithubConfig struct {
	WebhookSecret   string   `yaml:"webhookSecret"`
	Token           string   `yaml:"token"`
	APIBaseURL      string   `yaml:"apiBaseURL"`
	StatusContexts  []string `yaml:"statusContexts"`
	CheckRunMarkers []string `yaml:"checkRunMarkers"`
}

func (c *GithubConfig) SetDefaults() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = "https://api.github.com"
	}
	if len(c.StatusContexts) == 0 {
		c.StatusContexts = []string{"ci/prow/e2e", "ci/prow/images"}
	}
	if len(c.CheckRunMarkers) == 0 {
		c.CheckRunMarkers = []string{"konflux"}
	}
}

func (c *GithubConfig) Validate() (err error) {
	if len(c.StatusContexts) == 0 {
		return errors.New("Configuration item 'github.statusContexts' is required; please set it to the commit status contexts that should be relayed")
	}

	return nil
}

// CloudStorageConfig configures access to the bucket holding prow job artifacts; the bucket is public so reads are anonymous unless authenticated is set
type CloudStorageConfig struct {
	Authenticated bool   `yaml:"authenticated"`
	DefaultBucket string `yaml:"defaultBucket"`
}

func (c *CloudStorageConfig) SetDefaults() {
	if c.DefaultBucket == "" {
		c.DefaultBucket = "test-platform-results"
	}
}

func (c *CloudStorageConfig) Validate() (err error) {
	return nil
}

// LogilicaConfig configures the downstream ci analytics api
type LogilicaConfig struct {
	BaseURL        string        `yaml:"baseURL"`
	Token          string        `yaml:"token"`
	Domain         string        `yaml:"domain"`
	UploadAttempts int           `yaml:"uploadAttempts"`
	UploadDelay    time.Duration `yaml:"uploadDelay"`
}

func (c *LogilicaConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://logilica.io/api/import/v1"
	}
	if c.Domain == "" {
		c.Domain = "redhat"
	}
	if c.UploadAttempts <= 0 {
		c.UploadAttempts = 7
	}
	if c.UploadDelay <= 0 {
		c.UploadDelay = 5 * time.Second
	}
}

func (c *LogilicaConfig) Validate() (err error) {
	if c.BaseURL == "" {
		return errors.New("Configuration item 'logilica.baseURL' is required; please set it to the base url of the Logilica import api")
	}
	if c.UploadAttempts <= 0 {
		return fmt.Errorf("Configuration item 'logilica.uploadAttempts' has to be larger than 0, got %v", c.UploadAttempts)
	}

	return nil
}

// BackfillConfig configures the pull request uploader and prow crawler
type BackfillConfig struct {
	ItemDelay       time.Duration `yaml:"itemDelay"`
	TrackerDir      string        `yaml:"trackerDir"`
	DefaultRepo     string        `yaml:"defaultRepo"`
	SystemName      string        `yaml:"systemName"`
	SystemEmail     string        `yaml:"systemEmail"`
	SystemAccountID string        `yaml:"systemAccountID"`
	GcsWebBaseURL   string        `yaml:"gcsWebBaseURL"`
}

func (c *BackfillConfig) SetDefaults() {
	if c.ItemDelay <= 0 {
		c.ItemDelay = time.Second
	}
	if c.TrackerDir == "" {
		c.TrackerDir = "./tracker"
	}
	if c.DefaultRepo == "" {
		c.DefaultRepo = "openshift/unknown"
	}
	if c.SystemName == "" {
		c.SystemName = "OpenShift CI System"
	}
	if c.SystemEmail == "" {
		c.SystemEmail = "openshift-ci@redhat.com"
	}
	if c.SystemAccountID == "" {
		c.SystemAccountID = "openshift-ci-robot"
	}
	if c.GcsWebBaseURL == "" {
		c.GcsWebBaseURL = "https://gcsweb-ci.apps.ci.l2s4.p1.openshiftapps.com/gcs"
	}
}

func (c *BackfillConfig) Validate() (err error) {
	if !strings.Contains(c.DefaultRepo, "/") {
		return fmt.Errorf("Configuration item 'backfill.defaultRepo' has to be in owner/name format, got %v", c.DefaultRepo)
	}

	return nil
}

// RequireWebhookSecret returns the webhook secret or a fatal error if it hasn't been configured
func (c *GithubConfig) RequireWebhookSecret() (string, error) {
	if c == nil || c.WebhookSecret == "" {
		return "", NewFatalError(fmt.Errorf("github.webhookSecret: %w", ErrMissingConfig))
	}
	return c.WebhookSecret, nil
}

// RequireToken returns the logilica token or a fatal error if it hasn't been configured
func (c *LogilicaConfig) RequireToken() (string, error) {
	if c == nil || c.Token == "" {
		return "", NewFatalError(fmt.Errorf("logilica.token: %w", ErrMissingConfig))
	}
	return c.Token, nil
}
