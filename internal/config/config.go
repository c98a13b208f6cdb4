package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type PrometheusCfg struct {
	Port int `yaml:"port" json:"port"`
}

// Config carries the ambient concerns of the tool. The root path and the
// minimum age stay positional command-line arguments; none of the policy
// inputs live here.
type Config struct {
	IntervalMinutes int           `yaml:"interval_minutes" json:"interval_minutes"` // Daemon mode sweep interval
	Prometheus      PrometheusCfg `yaml:"prometheus" json:"prometheus"`             // Metrics server, 0 = disabled
	DatabasePath    string        `yaml:"database_path" json:"database_path"`       // SQLite sweep history, "" = disabled
	LogFile         string        `yaml:"log_file" json:"log_file"`                 // Mirror log output to this file
	NoColor         bool          `yaml:"no_color" json:"no_color"`                 // Disable ANSI colors on the console
	ProtectedPaths  []string      `yaml:"protected_paths" json:"protected_paths"`   // Extra roots the validator must refuse
}

var (
	errNegativeInterval = errors.New("interval_minutes cannot be negative")
	errInvalidPort      = errors.New("prometheus port must be between 0 and 65535")
	errInvalidPath      = errors.New("protected path must be absolute")
)

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	// Cannot fail on an empty config.
	_ = cfg.validateAndDefault()
	return cfg
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateAndDefault(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) validateAndDefault() error {
	if c.IntervalMinutes < 0 {
		return errNegativeInterval
	}
	if c.IntervalMinutes == 0 {
		c.IntervalMinutes = 15
	}

	if c.Prometheus.Port < 0 || c.Prometheus.Port > 65535 {
		return errInvalidPort
	}

	cleaned := make([]string, 0, len(c.ProtectedPaths))
	for _, p := range c.ProtectedPaths {
		cp, err := cleanAbsolute(p)
		if err != nil {
			return err
		}
		cleaned = append(cleaned, cp)
	}
	c.ProtectedPaths = cleaned

	return nil
}

func cleanAbsolute(p string) (string, error) {
	if p == "" {
		return "", errInvalidPath
	}
	cp := filepath.Clean(p)
	if !filepath.IsAbs(cp) {
		return "", fmt.Errorf("%w: %s", errInvalidPath, p)
	}
	return cp, nil
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

func (c *Config) PrometheusAddress() string {
	return fmt.Sprintf(":%d", c.Prometheus.Port)
}
