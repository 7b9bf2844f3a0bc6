package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultFileName = "config.yaml"

// Config captures the user-adjustable knobs for the microphone gate.
type Config struct {
	Gate    GateConfig    `yaml:"gate"`
	Logging LoggingConfig `yaml:"logging"`

	// Source indicates where the configuration originated (defaults or a file path).
	Source string `yaml:"-"`
}

// GateConfig tunes probe timing and warm-up behaviour.
type GateConfig struct {
	// ProbeDwellMillis is how long a probe stream stays open.
	ProbeDwellMillis int `yaml:"probe_dwell_ms"`
	// WarmupDelayMillis defers the startup probe until initialization settles.
	WarmupDelayMillis int `yaml:"warmup_delay_ms"`
	// NotifyOnDenied raises a desktop alert when a warm-up probe ends denied.
	NotifyOnDenied bool `yaml:"notify_on_denied"`
	// PermissionOverride pins the authorization status for development
	// (granted, denied, prompt). Empty means ask the platform.
	PermissionOverride string `yaml:"permission_override"`
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the baseline configuration used when no overrides are supplied.
func Default() Config {
	return Config{
		Gate: GateConfig{
			ProbeDwellMillis:  100,
			WarmupDelayMillis: 500,
			NotifyOnDenied:    true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Source: "<defaults>",
	}
}

// Load reads configuration from disk if present, otherwise returning defaults.
// When path is empty, the loader attempts to read ./config.yaml but tolerates a missing file.
func Load(path string) (Config, error) {
	cfg := Default()

	candidate := strings.TrimSpace(path)
	explicit := candidate != ""
	if !explicit {
		candidate = DefaultFileName
	}

	data, err := os.ReadFile(candidate)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return cfg, fmt.Errorf("config file %q not found", candidate)
			}
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file %q: %w", candidate, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %q: %w", candidate, err)
	}
	cfg.Source = candidate
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate ensures essential configuration values are present and sensible.
func (c Config) Validate() error {
	if c.Gate.ProbeDwellMillis <= 0 {
		return errors.New("gate.probe_dwell_ms must be positive")
	}
	if c.Gate.WarmupDelayMillis <= 0 {
		return errors.New("gate.warmup_delay_ms must be positive")
	}
	if override := c.Gate.PermissionOverride; override != "" {
		switch override {
		case "granted", "denied", "prompt":
		default:
			return fmt.Errorf("gate.permission_override %q is not one of granted, denied, prompt", override)
		}
	}

	if _, err := NormalizeLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := NormalizeFormat(c.Logging.Format); err != nil {
		return err
	}

	return nil
}

func (c *Config) normalize() {
	c.Gate.PermissionOverride = strings.ToLower(strings.TrimSpace(c.Gate.PermissionOverride))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// ProbeDwell returns the probe dwell window as a duration.
func (c Config) ProbeDwell() time.Duration {
	return time.Duration(c.Gate.ProbeDwellMillis) * time.Millisecond
}

// WarmupDelay returns the warm-up deferral as a duration.
func (c Config) WarmupDelay() time.Duration {
	return time.Duration(c.Gate.WarmupDelayMillis) * time.Millisecond
}

// NormalizeLogLevel validates and lowercases known logging levels.
func NormalizeLogLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return "info", nil
	case "debug":
		return "debug", nil
	case "warn", "warning":
		return "warn", nil
	case "error":
		return "error", nil
	default:
		return "", fmt.Errorf("unsupported log level %q", level)
	}
}

// NormalizeFormat validates and canonicalizes logging format identifiers.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return "json", nil
	case "console", "text":
		return "console", nil
	default:
		return "", fmt.Errorf("unsupported log format %q", format)
	}
}
