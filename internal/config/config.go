// Package config loads hslog CLI settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "HSLOG_CONFIG"

// Config is the complete CLI configuration.
type Config struct {
	LogFile          string   `yaml:"log_file" env:"HSLOG_LOG_FILE"`
	LogConfig        string   `yaml:"log_config" env:"HSLOG_LOG_CONFIG"`
	InstallLogConfig bool     `yaml:"install_log_config" env:"HSLOG_INSTALL_LOG_CONFIG"`
	Poll             bool     `yaml:"poll" env:"HSLOG_POLL"`
	Format           string   `yaml:"format" env:"HSLOG_FORMAT"`
	IncludeTypes     []string `yaml:"include_types" env:"HSLOG_INCLUDE_TYPES" envSeparator:","`
	ExcludeTypes     []string `yaml:"exclude_types" env:"HSLOG_EXCLUDE_TYPES" envSeparator:","`
	RawLine          bool     `yaml:"raw_line" env:"HSLOG_RAW_LINE"`

	OTel    OTelConfig    `yaml:"otel" envPrefix:"HSLOG_OTEL_"`
	Discord DiscordConfig `yaml:"discord" envPrefix:"HSLOG_DISCORD_"`
}

// OTelConfig configures OTLP export of events and counters.
type OTelConfig struct {
	Endpoint       string        `yaml:"endpoint" env:"ENDPOINT"`
	Insecure       bool          `yaml:"insecure" env:"INSECURE"`
	ServiceName    string        `yaml:"service_name" env:"SERVICE_NAME"`
	MetricInterval time.Duration `yaml:"metric_interval" env:"METRIC_INTERVAL"`
}

// Enabled reports whether an OTLP endpoint is configured.
func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

// DiscordConfig configures match notifications. The token is only read from
// the environment.
type DiscordConfig struct {
	Token     string   `yaml:"-" env:"TOKEN"`
	ChannelID string   `yaml:"channel_id" env:"CHANNEL_ID"`
	Events    []string `yaml:"events" env:"EVENTS" envSeparator:","`
}

// Enabled reports whether a bot token is configured.
func (c DiscordConfig) Enabled() bool {
	return c.Token != ""
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Format: "jsonl",
		OTel: OTelConfig{
			Insecure:       true,
			ServiceName:    "hslog",
			MetricInterval: 15 * time.Second,
		},
		Discord: DiscordConfig{
			Events: []string{"match_start", "match_over"},
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path,
// then environment variables. An empty path falls back to HSLOG_CONFIG; a
// missing file is not an error unless path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks for invalid option combinations.
func (c Config) Validate() error {
	if c.Discord.Enabled() && c.Discord.ChannelID == "" {
		return fmt.Errorf("discord channel_id is required when HSLOG_DISCORD_TOKEN is set")
	}
	if c.OTel.MetricInterval < 0 {
		return fmt.Errorf("otel metric_interval must be non-negative, got %v", c.OTel.MetricInterval)
	}
	return nil
}

// DiscordEventAllowed reports whether events of the named type are posted
// to Discord.
func (c Config) DiscordEventAllowed(eventType string) bool {
	if !c.Discord.Enabled() {
		return false
	}
	for _, e := range c.Discord.Events {
		if e == "all" || e == eventType {
			return true
		}
	}
	return false
}
