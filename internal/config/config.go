// Package config provides environment-sourced configuration for the prompts
// sync job.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for all job-specific environment variables.
// Each setting is also read from its bare, unprefixed name for
// compatibility with existing deployments.
const EnvPrefix = "PROMPTS_SYNC"

// Environment identifies the Remote Settings deployment the job targets.
type Environment string

// Valid target environments.
const (
	EnvironmentLocal Environment = "local"
	EnvironmentDev   Environment = "dev"
	EnvironmentStage Environment = "stage"
	EnvironmentProd  Environment = "prod"
)

// Collection coordinates and source repository. The bucket and collection
// are assumed to pre-exist; the job never creates or destroys them.
const (
	// Bucket is the Remote Settings workspace bucket the job writes to.
	Bucket = "main-workspace"

	// Collection is the collection holding the AI window prompt records.
	Collection = "ai-window-prompts"

	// PromptsRepoURL is the Git repository containing the prompt definitions.
	PromptsRepoURL = "https://github.com/Firefox-AI/ai-window-remote-settings-prompts.git"
)

// DefaultRequestTimeout bounds each request to the Remote Settings server.
const DefaultRequestTimeout = 30 * time.Second

// defaultServers maps each environment to its default server URL.
// SERVER overrides the mapping.
var defaultServers = map[Environment]string{
	EnvironmentLocal: "http://localhost:8888/v1",
	EnvironmentDev:   "https://remote-settings-dev.allizom.org/v1",
	EnvironmentStage: "https://remote-settings.allizom.org/v1",
	EnvironmentProd:  "https://remote-settings.mozilla.org/v1",
}

// Config holds the process configuration for one sync run.
type Config struct {
	// Environment is the target Remote Settings deployment.
	Environment Environment

	// ServerURL is the base URL of the Remote Settings API.
	ServerURL string

	// Authorization is the credential sent on every request.
	Authorization string

	// DryRun suppresses all mutating requests to the server.
	DryRun bool

	// GitToken authenticates the prompts repository clone.
	GitToken string

	// RequestTimeout bounds each request to the server.
	RequestTimeout time.Duration

	// SentryDSN enables error reporting when set.
	SentryDSN string

	// SentryEnv tags reported errors; defaults to Environment.
	SentryEnv string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := Environment(strings.ToLower(lookup(v, "ENVIRONMENT")))
	if env == "" {
		env = EnvironmentLocal
	}
	defaultServer, ok := defaultServers[env]
	if !ok {
		return nil, fmt.Errorf("ENVIRONMENT=%q is not a valid value", env)
	}

	server := lookup(v, "SERVER")
	if server == "" {
		server = defaultServer
	}

	timeout := DefaultRequestTimeout
	if raw := lookup(v, "REQUEST_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("REQUEST_TIMEOUT_SECONDS=%q is not a valid integer: %w", raw, err)
		}
		timeout = time.Duration(seconds) * time.Second
	}

	sentryEnv := lookup(v, "SENTRY_ENV")
	if sentryEnv == "" {
		sentryEnv = string(env)
	}

	return &Config{
		Environment:    env,
		ServerURL:      server,
		Authorization:  lookup(v, "AUTHORIZATION"),
		DryRun:         isDryRun(lookup(v, "DRY_RUN")),
		GitToken:       lookup(v, "GIT_TOKEN"),
		RequestTimeout: timeout,
		SentryDSN:      lookup(v, "SENTRY_DSN"),
		SentryEnv:      sentryEnv,
	}, nil
}

// AutoApprove reports whether changes are self-approved after a successful
// batch. Only the dev environment skips the human approval gate.
func (c *Config) AutoApprove() bool {
	return c.Environment == EnvironmentDev
}

// lookup reads a setting through the prefixed Viper instance, falling back
// to the bare environment variable name.
func lookup(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return os.Getenv(key)
}

// isDryRun parses the DRY_RUN value. Only "1", "y" and "Y" enable it.
func isDryRun(value string) bool {
	switch value {
	case "1", "y", "Y":
		return true
	default:
		return false
	}
}
