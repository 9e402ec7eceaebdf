package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Mediator.validate(),
		c.Webhook.validate(),
		c.Stream.validate(),
		c.History.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (m *MediatorConfig) validate() error {
	return errors.Join(
		m.CircuitBreaker.validate("mediator.circuit_breaker"),
		m.RateLimit.validate("mediator.rate_limit"),
	)
}

func (w *WebhookConfig) validate() error {
	if !w.Enabled {
		return nil
	}

	var errs []error

	u, err := url.Parse(w.URL)
	switch {
	case w.URL == "":
		errs = append(errs, errors.New("webhook.url must not be empty when webhook is enabled"))
	case err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "":
		errs = append(errs, fmt.Errorf("webhook.url must be an absolute http(s) URL, got %q", w.URL))
	}

	c := w.Client
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("webhook.client.timeout must be positive"))
	}
	if c.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("webhook.client.retry.max_attempts must be >= 1, got %d", c.Retry.MaxAttempts))
	}
	if c.Retry.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("webhook.client.retry.multiplier must be >= 1, got %g", c.Retry.Multiplier))
	}

	return errors.Join(append(errs,
		c.CircuitBreaker.validate("webhook.client.circuit_breaker"),
		c.RateLimit.validate("webhook.client.rate_limit"),
	)...)
}

func (cb *CircuitBreakerConfig) validate(prefix string) error {
	if !cb.Enabled {
		return nil
	}

	var errs []error
	if cb.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.max_failures must be >= 1, got %d", prefix, cb.MaxFailures))
	}
	if cb.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	return errors.Join(errs...)
}

func (rl *RateLimitConfig) validate(prefix string) error {
	switch {
	case rl.RequestsPerSecond < 0:
		return fmt.Errorf("%s.requests_per_second must not be negative, got %g", prefix, rl.RequestsPerSecond)
	case rl.RequestsPerSecond > 0 && rl.BurstSize < 1:
		return fmt.Errorf("%s.burst_size must be >= 1 when throttling, got %d", prefix, rl.BurstSize)
	default:
		return nil
	}
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *StreamConfig) validate() error {
	var errs []error

	if s.BufferSize < 1 {
		errs = append(errs, fmt.Errorf("stream.buffer_size must be at least 1, got %d", s.BufferSize))
	}
	if s.PingInterval <= 0 {
		errs = append(errs, errors.New("stream.ping_interval must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("stream.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (h *HistoryConfig) validate() error {
	if h.MaxEventsPerOrder < 1 {
		return fmt.Errorf("history.max_events_per_order must be at least 1, got %d", h.MaxEventsPerOrder)
	}
	return nil
}
