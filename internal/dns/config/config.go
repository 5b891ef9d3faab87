// Package config loads the CLI configuration from DOH_-prefixed
// environment variables, applies defaults, and validates the result.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/haukened/doh-dns/internal/dns/domain"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Servers is the ordered DoH fallback chain as provider=timeout
	// specs, e.g. "google=3s cloudflare=10s". Order is fallback
	// priority. Known providers: google, cloudflare, cloudflare2.
	Servers []string `koanf:"servers" validate:"required,min=1,dive,server_spec"`
}

// DEFAULT_APP_CONFIG defines the default settings for the dohdns CLI:
// Google first with a short timeout, Cloudflare second with a longer one.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:      "prod",
	LogLevel: "info",
	Servers:  []string{"google=3s", "cloudflare=10s"},
}

// serverFactories maps provider names to their descriptor constructors.
var serverFactories = map[string]func(time.Duration) domain.Server{
	"google":      domain.Google,
	"cloudflare":  domain.Cloudflare,
	"cloudflare2": domain.CloudflareSecondary,
}

// parseServerSpec splits a "provider=timeout" spec into its parts.
func parseServerSpec(spec string) (factory func(time.Duration) domain.Server, timeout time.Duration, err error) {
	name, value, found := strings.Cut(spec, "=")
	if !found {
		return nil, 0, fmt.Errorf("server spec %q must be provider=timeout", spec)
	}
	factory, ok := serverFactories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, 0, fmt.Errorf("unknown DoH provider %q", name)
	}
	timeout, err = time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return nil, 0, fmt.Errorf("invalid timeout in server spec %q: %w", spec, err)
	}
	if timeout <= 0 {
		return nil, 0, fmt.Errorf("timeout in server spec %q must be positive", spec)
	}
	return factory, timeout, nil
}

// validServerSpec validates whether the field value is a well-formed
// provider=timeout spec for a known provider.
func validServerSpec(fl validator.FieldLevel) bool {
	_, _, err := parseServerSpec(fl.Field().String())
	return err == nil
}

// ServerList converts the configured specs into an ordered slice of
// server descriptors, preserving fallback priority.
func (c *AppConfig) ServerList() ([]domain.Server, error) {
	servers := make([]domain.Server, 0, len(c.Servers))
	for _, spec := range c.Servers {
		factory, timeout, err := parseServerSpec(spec)
		if err != nil {
			return nil, err
		}
		servers = append(servers, factory(timeout))
	}
	return servers, nil
}

// envLoader loads environment variables with the prefix "DOH_".
// It lowercases keys, strips the prefix, and splits list values on
// spaces or commas. Swappable in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DOH_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "DOH_"))
			value = strings.TrimSpace(value)

			if value == "" {
				return key, value
			}

			if strings.Contains(value, " ") || strings.Contains(value, ",") {
				parts := strings.FieldsFunc(value, func(r rune) bool {
					return r == ' ' || r == ','
				})
				return key, parts
			}

			return key, value
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG into the given koanf instance
// using the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the custom "server_spec" rule.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("server_spec", validServerSpec)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidation(validate); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
