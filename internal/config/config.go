package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything tunable at startup. The sampling interval and
// history size were hardcoded in earlier iterations; they are settings
// now so a slow SD card or a busier Pi can trade resolution for load.
type Config struct {
	Addr           string        `mapstructure:"addr"`
	SampleInterval time.Duration `mapstructure:"sample_interval"`
	HistorySize    int           `mapstructure:"history_size"`
	ProcessLimit   int           `mapstructure:"process_limit"`
	DiskPath       string        `mapstructure:"disk_path"`
}

// Load reads configuration from pimon.yaml (if present), PIMON_* env
// vars and built-in defaults, in ascending precedence of defaults <
// file < env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", "0.0.0.0:5000")
	v.SetDefault("sample_interval", time.Second)
	v.SetDefault("history_size", 60)
	v.SetDefault("process_limit", 10)
	v.SetDefault("disk_path", "/")

	v.SetConfigName("pimon")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/pimon")

	v.SetEnvPrefix("pimon")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; anything else is a real problem
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.SampleInterval <= 0 {
		return nil, fmt.Errorf("sample_interval must be positive, got %v", cfg.SampleInterval)
	}
	if cfg.HistorySize <= 0 {
		return nil, fmt.Errorf("history_size must be positive, got %d", cfg.HistorySize)
	}

	return &cfg, nil
}
