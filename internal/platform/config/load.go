package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	baseFile         = "base.yaml"
)

// Option configures Load.
type Option func(*loader)

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// WithEnviron replaces os.Environ as the source of APP_ overrides.
func WithEnviron(environ func() []string) Option {
	return func(l *loader) {
		if environ != nil {
			l.environ = environ
		}
	}
}

type loader struct {
	k       *koanf.Koanf
	dir     string
	environ func() []string
}

// Load builds the service configuration for profile. Layers, lowest
// precedence first:
//
//  1. built-in defaults
//  2. {dir}/base.yaml
//  3. {dir}/{profile}.yaml
//  4. APP_ environment variables
//
// An environment variable names a known key with dots replaced by
// underscores, so field names that contain underscores still resolve:
//
//	APP_WEBHOOK_URL                   -> webhook.url
//	APP_STREAM_PING_INTERVAL          -> stream.ping_interval
//	APP_HISTORY_MAX_EVENTS_PER_ORDER  -> history.max_events_per_order
//	APP_WEBHOOK_CLIENT_RETRY_MAX_ATTEMPTS -> webhook.client.retry.max_attempts
//
// The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{k: koanf.New("."), dir: defaultConfigDir, environ: os.Environ}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.defaults(); err != nil {
		return nil, err
	}
	if err := l.file(baseFile); err != nil {
		return nil, err
	}
	if err := l.file(profile + ".yaml"); err != nil {
		return nil, err
	}
	if err := l.env(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// defaults seeds every known key so env overrides resolve for keys that no
// YAML file mentions.
func (l *loader) defaults() error {
	for key, value := range defaults() {
		if err := l.k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

func (l *loader) file(name string) error {
	path := filepath.Join(l.dir, name)
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	return nil
}

func (l *loader) env() error {
	known := envKeys(l.k.Keys())

	provider := env.Provider(".", env.Opt{
		Prefix:      envPrefix,
		EnvironFunc: l.environ,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
	if err := l.k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// envKeys maps the underscore form of each key back to the key, e.g.
// "stream_ping_interval" to "stream.ping_interval".
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
