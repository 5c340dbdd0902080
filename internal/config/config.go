package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	PollInterval    Duration
	Provider        string
	Feed            FeedConfig
	Timezone        string
	AdminToken      string
	CORSOrigins     []string
	ShutdownTimeout Duration
	Log             LogConfig
	Metrics         MetricsConfig
}

// FeedConfig controls how the upstream sports feed is reached and cached.
type FeedConfig struct {
	BaseURL       string
	Path          string
	Timeout       Duration
	CacheTTL      Duration
	RetryAttempts int
	RetryBackoff  Duration
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return applyEnv(defaults())
}

// LoadFile layers a YAML file over the defaults, then environment variables over both.
// An empty path falls back to CONFIG_FILE; when neither is set this is Load.
func LoadFile(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(envConfigFile)
	}
	base := defaults()
	if path != "" {
		fc, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := fc.apply(&base); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return applyEnv(base), nil
}

// LoadDotEnv loads KEY=VALUE pairs into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func defaults() Config {
	return Config{
		Port:         defaultPort,
		PollInterval: defaultPollInterval,
		Provider:     defaultProvider,
		Feed: FeedConfig{
			BaseURL:       defaultFeedBaseURL,
			Path:          defaultFeedPath,
			Timeout:       defaultFeedTimeout,
			CacheTTL:      defaultCacheTTL,
			RetryAttempts: defaultRetryAttempts,
			RetryBackoff:  defaultRetryBackoff,
		},
		Timezone:        defaultTimezone,
		ShutdownTimeout: defaultShutdownTimeout,
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
	}
}

func applyEnv(base Config) Config {
	return Config{
		Port:         envOrDefault(envPort, base.Port),
		PollInterval: durationEnvOrDefault(envPollInterval, base.PollInterval),
		Provider:     envOrDefault(envProvider, base.Provider),
		Feed: FeedConfig{
			BaseURL:       envOrDefault(envFeedBaseURL, base.Feed.BaseURL),
			Path:          envOrDefault(envFeedPath, base.Feed.Path),
			Timeout:       durationEnvOrDefault(envFeedTimeout, base.Feed.Timeout),
			CacheTTL:      durationEnvOrDefault(envCacheTTL, base.Feed.CacheTTL),
			RetryAttempts: intEnvOrDefault(envRetryAttempts, base.Feed.RetryAttempts),
			RetryBackoff:  durationEnvOrDefault(envRetryBackoff, base.Feed.RetryBackoff),
		},
		Timezone:        envOrDefault(envTimezone, base.Timezone),
		AdminToken:      envOrDefault(envAdminToken, base.AdminToken),
		CORSOrigins:     listEnvOrDefault(envCORSOrigins, base.CORSOrigins),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, base.ShutdownTimeout),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, base.Log.Level),
			Format: envOrDefault(envLogFormat, base.Log.Format),
		},
		Metrics: loadMetrics(base.Metrics),
	}
}
