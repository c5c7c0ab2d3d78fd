package config

import (
	"errors"
	"fmt"
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
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverrides sets dotted keys after every other layer, so command-line
// flags win over files and environment. Empty string values are skipped.
func WithOverrides(kv map[string]any) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any, len(kv))
		}
		for key, val := range kv {
			if s, ok := val.(string); ok && s == "" {
				continue
			}
			o.overrides[key] = val
		}
	}
}

// Load builds the configuration for profile from these layers, each
// overriding the one before:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_-prefixed environment variables
//  5. WithOverrides
//
// Environment names are matched against the keys known after layer 3, so
// underscores inside a key survive:
//
//	APP_DATABASE_BUSY_TIMEOUT          -> database.busy_timeout
//	APP_ANALYTICS_OVERVIEW_WORKERS     -> analytics.overview_workers
//	APP_CLIENT_CIRCUIT_BREAKER_TIMEOUT -> client.circuit_breaker.timeout
//
// The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	if err := setAll(k, defaults()); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := loadEnv(k); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if err := setAll(k, o.overrides); err != nil {
		return nil, fmt.Errorf("applying overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setAll(k *koanf.Koanf, kv map[string]any) error {
	for key, val := range kv {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func loadEnv(k *koanf.Koanf) error {
	known := envKeys(k.Keys())

	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
}

// envKeys maps the environment spelling of every known key
// ("database_busy_timeout") to its dotted form ("database.busy_timeout").
func envKeys(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[strings.ReplaceAll(key, ".", "_")] = key
	}
	return out
}

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
