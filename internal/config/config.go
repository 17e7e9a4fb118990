// Package config loads process configuration from an optional config file and
// environment variables, environment taking precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StoreConfig struct {
	Dir              string `mapstructure:"dir"`
	MaxSizeBytes     int    `mapstructure:"max_size_bytes"`
	StrictComponents bool   `mapstructure:"strict_components"`
	SeedOnStart      bool   `mapstructure:"seed_on_start"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads config.yaml when present and applies environment overrides.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.dir", "./inventory_db")
	v.SetDefault("store.max_size_bytes", 1<<30)
	v.SetDefault("store.strict_components", false)
	v.SetDefault("store.seed_on_start", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file; environment and defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVariables(v *viper.Viper) {
	v.BindEnv("server.addr", "INVCORE_ADDR")
	v.BindEnv("server.mode", "INVCORE_MODE")
	v.BindEnv("server.shutdown_timeout", "INVCORE_SHUTDOWN_TIMEOUT")

	v.BindEnv("store.dir", "INVCORE_STORE_DIR")
	v.BindEnv("store.max_size_bytes", "INVCORE_STORE_MAX_SIZE_BYTES")
	v.BindEnv("store.strict_components", "INVCORE_STORE_STRICT_COMPONENTS")
	v.BindEnv("store.seed_on_start", "INVCORE_SEED_ON_START")

	v.BindEnv("log.level", "INVCORE_LOG_LEVEL")
	v.BindEnv("log.format", "INVCORE_LOG_FORMAT")
}
