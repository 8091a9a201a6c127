package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AXL         AXLConfig `yaml:"axl" envPrefix:"AXL_"`
	LogLevel    string    `yaml:"log_level" env:"LOG_LEVEL" envDefault:"INFO"`
	LogEncoding string    `yaml:"log_encoding" env:"LOG_ENCODING" envDefault:"console"`
}

type AXLConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT" envDefault:"8443"`
	Username string `yaml:"username" env:"USERNAME"`
	Password string `yaml:"password" env:"PASSWORD"`
	// Version is the AXL schema version, e.g. 12.5.
	Version            string        `yaml:"version" env:"VERSION" envDefault:"12.5"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify" env:"INSECURE_SKIP_VERIFY" envDefault:"true"`
	Timeout            time.Duration `yaml:"timeout" env:"TIMEOUT" envDefault:"20s"`
}

// Load reads defaults and the environment, then overlays the YAML file at
// path when path is not empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings that cannot be prompted for.
func (c *Config) Validate() error {
	if c.AXL.Port <= 0 || c.AXL.Port > 65535 {
		return fmt.Errorf("axl port %d out of range", c.AXL.Port)
	}
	if c.AXL.Timeout <= 0 {
		return errors.New("axl timeout must be positive")
	}
	if c.AXL.Version == "" {
		return errors.New("axl version must be set")
	}
	return nil
}

// Missing reports whether a credential or the host still has to be asked for.
func (c *AXLConfig) Missing() bool {
	return c.Username == "" || c.Password == "" || c.Host == ""
}
