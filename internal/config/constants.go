package config

import "time"

const (
	envConfigFile      = "CONFIG_FILE"
	envPort            = "PORT"
	envPollInterval    = "POLL_INTERVAL"
	envProvider        = "PROVIDER"
	envFeedBaseURL     = "FEED_BASE_URL"
	envFeedPath        = "FEED_PATH"
	envFeedTimeout     = "FEED_TIMEOUT"
	envCacheTTL        = "FEED_CACHE_TTL"
	envRetryAttempts   = "FEED_RETRY_ATTEMPTS"
	envRetryBackoff    = "FEED_RETRY_BACKOFF"
	envTimezone        = "DISPLAY_TIMEZONE"
	envAdminToken      = "ADMIN_TOKEN"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	ProviderFixture    = "fixture"
	ProviderSportsFeed = "sportsfeed"

	defaultPort            = "4000"
	defaultPollInterval    = 30 * Duration(time.Second)
	defaultProvider        = ProviderFixture
	defaultFeedBaseURL     = "http://localhost:3000"
	defaultFeedPath        = "/data/sports.json"
	defaultFeedTimeout     = 10 * Duration(time.Second)
	defaultCacheTTL        = 5 * Duration(time.Minute)
	defaultRetryAttempts   = 3
	defaultRetryBackoff    = 200 * Duration(time.Millisecond)
	defaultTimezone        = "UTC"
	defaultShutdownTimeout = 10 * Duration(time.Second)
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "live-scores-service"
)
