package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultStreamBufferSize = 16

	defaultHistoryMaxEvents = 256
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "5s",
		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"mediator.circuit_breaker.enabled":         false,
		"mediator.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"mediator.circuit_breaker.timeout":         "30s",
		"mediator.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"mediator.rate_limit.requests_per_second":  0,
		"mediator.rate_limit.burst_size":           0,

		"webhook.enabled":                                false,
		"webhook.url":                                    "",
		"webhook.best_effort":                            false,
		"webhook.client.timeout":                         "2s",
		"webhook.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"webhook.client.retry.initial_interval":          "100ms",
		"webhook.client.retry.max_interval":              "1s",
		"webhook.client.retry.multiplier":                defaultRetryMultiplier,
		"webhook.client.circuit_breaker.enabled":         true,
		"webhook.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"webhook.client.circuit_breaker.timeout":         "30s",
		"webhook.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"webhook.client.rate_limit.requests_per_second":  0,
		"webhook.client.rate_limit.burst_size":           0,

		"stream.buffer_size":   defaultStreamBufferSize,
		"stream.ping_interval": "30s",
		"stream.write_timeout": "5s",

		"history.max_events_per_order": defaultHistoryMaxEvents,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "go-domain-primitives",
	}
}
