package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig is the web server configuration loaded from a config file.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Profile         string        `mapstructure:"profile"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadServerConfig reads the server configuration from path.
func LoadServerConfig(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("profile", "default")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return &cfg, nil
}
