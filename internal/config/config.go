// Package config loads docintake settings from flags, DOCINTAKE_* env vars
// and an optional config file, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (DOCINTAKE_LOG_LEVEL, ...).
const EnvPrefix = "DOCINTAKE"

// Default values.
const (
	DefaultLogLevel    = "info"
	DefaultServiceName = "docintake"
)

// Config holds runtime settings.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Browse    BrowseConfig    `mapstructure:"browse"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// LogConfig controls the zap logger. An empty File disables logging, since
// the terminal belongs to the UI.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// BrowseConfig controls the file picker.
type BrowseConfig struct {
	StartDir   string `mapstructure:"start_dir"`
	ShowHidden bool   `mapstructure:"show_hidden"`
}

// TelemetryConfig controls OTLP span export. Empty endpoint = disabled.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-file":      "log.file",
	"log-level":     "log.level",
	"start-dir":     "browse.start_dir",
	"show-hidden":   "browse.show_hidden",
	"otlp-endpoint": "telemetry.otlp_endpoint",
	"service-name":  "telemetry.service_name",
}

// RegisterFlags adds the config flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("env-file", "", "load environment variables from this .env file first")
	fs.String("log-file", "", "write logs to this file (disabled when empty)")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String("start-dir", "", "directory the file browser opens in (default: working directory)")
	fs.Bool("show-hidden", false, "show dotfiles in the file browser")
	fs.String("otlp-endpoint", "", "OTLP/HTTP endpoint for spans, host:port or URL (http://localhost:4318)")
	fs.String("service-name", DefaultServiceName, "service.name reported with spans")
}

// Load builds a Config from fs, the environment (optionally seeded from a
// .env file) and the optional config file.
// fs may be nil, in which case only env, file and defaults apply.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if fs != nil {
		// Variables already set in the environment win over the file.
		if f := fs.Lookup("env-file"); f != nil && f.Value.String() != "" {
			if err := godotenv.Load(f.Value.String()); err != nil {
				return nil, fmt.Errorf("load env file %s: %w", f.Value.String(), err)
			}
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("browse.start_dir", "")
	v.SetDefault("browse.show_hidden", false)
	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.service_name", DefaultServiceName)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", f.Value.String(), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	applyOTelEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyOTelEnv honours the standard OTEL_* variables when nothing more
// specific was given.
func applyOTelEnv(cfg *Config) {
	if cfg.Telemetry.OTLPEndpoint == "" {
		cfg.Telemetry.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" && cfg.Telemetry.ServiceName == DefaultServiceName {
		cfg.Telemetry.ServiceName = name
	}
}

func applyDefaults(cfg *Config) {
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Browse.StartDir == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.Browse.StartDir = wd
		}
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = DefaultServiceName
	}
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Browse.StartDir != "" {
		info, err := os.Stat(c.Browse.StartDir)
		if err != nil {
			return fmt.Errorf("browse.start_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("browse.start_dir %q is not a directory", c.Browse.StartDir)
		}
	}
	return nil
}
