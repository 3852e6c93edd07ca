package config

import (
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Mohan777-G/metrics-whisperer-ai/errors"
)

// Default values applied before file and environment overrides
const (
	DefaultPrometheusURL = "http://localhost:9090"
	DefaultGrafanaURL    = "http://localhost:3000"
	DefaultServerPort    = 8000
	DefaultQueryTimeout  = 30 * time.Second
	DefaultDemoInterval  = 5 * time.Second
	DefaultErrorBackoff  = 10 * time.Second
)

// Config represents the complete service configuration.
// It is loaded once at startup and treated as immutable afterwards.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Prometheus PrometheusConfig `mapstructure:"prometheus"`
	Grafana    GrafanaConfig    `mapstructure:"grafana"`
	Generator  GeneratorConfig  `mapstructure:"generator"`

	// HuggingFaceAPIKey is read from HUGGINGFACE_API_KEY and bound here for
	// deployment parity. No code path consumes it.
	HuggingFaceAPIKey string `mapstructure:"huggingface_api_key"`
}

// ServerConfig defines the HTTP listener settings
type ServerConfig struct {
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Addr returns the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// PrometheusConfig defines the metrics backend connection
type PrometheusConfig struct {
	URL          string        `mapstructure:"url"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

// GrafanaConfig defines the dashboard base URL used for explore links.
// An empty URL disables link generation; query responses then carry a
// null link instead of a visualization URL.
type GrafanaConfig struct {
	URL string `mapstructure:"url"`
}

// GeneratorConfig defines the demonstration metrics generator settings
type GeneratorConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Interval     time.Duration `mapstructure:"interval"`
	ErrorBackoff time.Duration `mapstructure:"error_backoff"`
}

// Load reads configuration from the environment, merging an optional
// config.yaml from the working directory. Environment variables win over
// file values, file values win over defaults.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom behaves like Load but searches the given directory for the
// optional config file.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Nested keys map onto flat environment names: "prometheus.url"
	// resolves from PROMETHEUS_URL, "grafana.url" from GRAFANA_URL.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; the environment and defaults
		// carry the full surface.
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.WrapInvalid(
				fmt.Errorf("failed to read config file: %w", err),
				"Config", "LoadFrom", "read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("failed to decode configuration: %w", err),
			"Config", "LoadFrom", "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every configuration key with its default value.
// Registration also makes the keys visible to AutomaticEnv, so each one
// can be overridden from the environment without explicit binding.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("prometheus.url", DefaultPrometheusURL)
	v.SetDefault("prometheus.query_timeout", DefaultQueryTimeout)
	v.SetDefault("grafana.url", DefaultGrafanaURL)
	v.SetDefault("generator.enabled", true)
	v.SetDefault("generator.interval", DefaultDemoInterval)
	v.SetDefault("generator.error_backoff", DefaultErrorBackoff)
	v.SetDefault("huggingface_api_key", "")
}

// Validate checks that the loaded configuration is usable
func (c *Config) Validate() error {
	if err := validateBaseURL(c.Prometheus.URL); err != nil {
		return errors.WrapInvalid(
			fmt.Errorf("prometheus.url: %w", err),
			"Config", "Validate", "validate backend URL")
	}

	// An empty Grafana URL is legal and disables explore links. A set
	// value must still parse.
	if c.Grafana.URL != "" {
		if err := validateBaseURL(c.Grafana.URL); err != nil {
			return errors.WrapInvalid(
				fmt.Errorf("grafana.url: %w", err),
				"Config", "Validate", "validate dashboard URL")
		}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.WrapInvalid(
			fmt.Errorf("server.port %d is outside the valid range 1-65535", c.Server.Port),
			"Config", "Validate", "validate listen port")
	}

	if c.Prometheus.QueryTimeout <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("prometheus.query_timeout must be positive, got %s", c.Prometheus.QueryTimeout),
			"Config", "Validate", "validate query timeout")
	}

	if c.Generator.Interval <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("generator.interval must be positive, got %s", c.Generator.Interval),
			"Config", "Validate", "validate generator interval")
	}

	if c.Generator.ErrorBackoff <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("generator.error_backoff must be positive, got %s", c.Generator.ErrorBackoff),
			"Config", "Validate", "validate generator backoff")
	}

	return nil
}

// validateBaseURL checks that a configured base URL is absolute with an
// http or https scheme
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q (must be http or https)", u.Scheme)
	}
	if u.Host == "" {
		return stderrors.New("missing host")
	}
	return nil
}
