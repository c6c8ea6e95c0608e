package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the server settings, read from STEPBUDDY_* environment
// variables with defaults for local development.
type Config struct {
	Port      string `mapstructure:"port"`
	AWSRegion string `mapstructure:"aws_region"`
	JWTSecret string `mapstructure:"jwt_secret"`
	LogJSON   bool   `mapstructure:"log_json"`
	Debug     bool   `mapstructure:"debug"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("STEPBUDDY")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("log_json", false)
	v.SetDefault("debug", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("STEPBUDDY_JWT_SECRET must be set")
	}
	return &cfg, nil
}
