// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Mediator  MediatorConfig  `koanf:"mediator"`
	Webhook   WebhookConfig   `koanf:"webhook"`
	Stream    StreamConfig    `koanf:"stream"`
	History   HistoryConfig   `koanf:"history"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// RequestTimeout bounds handler execution, including event dispatch.
	// Zero disables the timeout middleware.
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MediatorConfig holds settings for the in-process notification bus that
// receives published domain events.
type MediatorConfig struct {
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	Enabled       bool          `koanf:"enabled"`
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds delivery throttling settings. A zero
// RequestsPerSecond disables throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// WebhookConfig holds settings for forwarding order events to an external
// HTTP endpoint.
type WebhookConfig struct {
	Enabled bool   `koanf:"enabled"`
	URL     string `koanf:"url"`

	// BestEffort logs delivery failures instead of failing the publish that
	// carried the event.
	BestEffort bool         `koanf:"best_effort"`
	Client     ClientConfig `koanf:"client"`
}

// ClientConfig holds outbound HTTP client settings.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// StreamConfig holds settings for the live order event stream served over
// WebSocket.
type StreamConfig struct {
	// BufferSize is the number of undelivered events a watcher may hold
	// before it is disconnected.
	BufferSize   int           `koanf:"buffer_size"`
	PingInterval time.Duration `koanf:"ping_interval"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// HistoryConfig holds settings for the per-order event history served by
// GET /api/v1/orders/{id}/events.
type HistoryConfig struct {
	// MaxEventsPerOrder caps the events kept for one order. Older events are
	// dropped first.
	MaxEventsPerOrder int `koanf:"max_events_per_order"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
