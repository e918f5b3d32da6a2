package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Env             string `mapstructure:"ENV"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	OutputFormat    string `mapstructure:"OUTPUT_FORMAT"`
	ReceptionPrefix string `mapstructure:"RECEPTION_PREFIX"`
	AccountsPrefix  string `mapstructure:"ACCOUNTS_PREFIX"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OUTPUT_FORMAT", "text")
	v.SetDefault("RECEPTION_PREFIX", "Reception")
	v.SetDefault("ACCOUNTS_PREFIX", "Accounts")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("OUTPUT_FORMAT")
	v.BindEnv("RECEPTION_PREFIX")
	v.BindEnv("ACCOUNTS_PREFIX")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// JSONOutput reports whether admission results should be rendered as JSON.
func (c *Config) JSONOutput() bool {
	return c.OutputFormat == "json"
}

// Validate rejects output formats and log levels the console cannot honour.
func (c *Config) Validate() error {
	if c.OutputFormat != "text" && c.OutputFormat != "json" {
		return fmt.Errorf("OUTPUT_FORMAT must be \"text\" or \"json\", got %q", c.OutputFormat)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL is not a valid level: %w", err)
	}
	if c.ReceptionPrefix == "" || c.AccountsPrefix == "" {
		return fmt.Errorf("RECEPTION_PREFIX and ACCOUNTS_PREFIX must not be empty")
	}
	return nil
}
