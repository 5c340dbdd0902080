package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

type fileConfig struct {
	Port            string       `yaml:"port"`
	PollInterval    string       `yaml:"pollInterval"`
	Provider        string       `yaml:"provider"`
	Feed            fileFeed     `yaml:"feed"`
	Timezone        string       `yaml:"timezone"`
	AdminToken      string       `yaml:"adminToken"`
	CORSOrigins     []string     `yaml:"corsOrigins"`
	ShutdownTimeout string       `yaml:"shutdownTimeout"`
	Log             fileLog      `yaml:"log"`
	Metrics         *fileMetrics `yaml:"metrics"`
}

type fileFeed struct {
	BaseURL       string `yaml:"baseUrl"`
	Path          string `yaml:"path"`
	Timeout       string `yaml:"timeout"`
	CacheTTL      string `yaml:"cacheTtl"`
	RetryAttempts int    `yaml:"retryAttempts"`
	RetryBackoff  string `yaml:"retryBackoff"`
}

type fileLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type fileMetrics struct {
	Enabled      *bool  `yaml:"enabled"`
	Port         string `yaml:"port"`
	OtlpEndpoint string `yaml:"otlpEndpoint"`
	ServiceName  string `yaml:"serviceName"`
	OtlpInsecure *bool  `yaml:"otlpInsecure"`
}

func readFile(path string) (fileConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(buf, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing yaml: %w", err)
	}
	return fc, nil
}

// apply copies every value set in the file onto cfg.
func (fc fileConfig) apply(cfg *Config) error {
	setString(&cfg.Port, fc.Port)
	setString(&cfg.Provider, fc.Provider)
	setString(&cfg.Timezone, fc.Timezone)
	setString(&cfg.AdminToken, fc.AdminToken)
	setString(&cfg.Feed.BaseURL, fc.Feed.BaseURL)
	setString(&cfg.Feed.Path, fc.Feed.Path)
	setString(&cfg.Log.Level, fc.Log.Level)
	setString(&cfg.Log.Format, fc.Log.Format)
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.CORSOrigins
	}
	if fc.Feed.RetryAttempts > 0 {
		cfg.Feed.RetryAttempts = fc.Feed.RetryAttempts
	}

	durations := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"pollInterval", fc.PollInterval, &cfg.PollInterval},
		{"shutdownTimeout", fc.ShutdownTimeout, &cfg.ShutdownTimeout},
		{"feed.timeout", fc.Feed.Timeout, &cfg.Feed.Timeout},
		{"feed.cacheTtl", fc.Feed.CacheTTL, &cfg.Feed.CacheTTL},
		{"feed.retryBackoff", fc.Feed.RetryBackoff, &cfg.Feed.RetryBackoff},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil || parsed <= 0 {
			return fmt.Errorf("invalid %s %q", d.name, d.raw)
		}
		*d.dst = parsed
	}

	if m := fc.Metrics; m != nil {
		if m.Enabled != nil {
			cfg.Metrics.Enabled = *m.Enabled
		}
		if m.OtlpInsecure != nil {
			cfg.Metrics.OtlpInsecure = *m.OtlpInsecure
		}
		setString(&cfg.Metrics.Port, m.Port)
		setString(&cfg.Metrics.OtlpEndpoint, m.OtlpEndpoint)
		setString(&cfg.Metrics.ServiceName, m.ServiceName)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
