// Package config provides the sdrforge configuration: sensible defaults,
// optionally overridden by an sdrforge.yaml in the working directory or
// SDRFORGE_* environment variables. The dashboard runs fine with no config
// file at all.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig controls the tick cadences and the wave viewer default.
type UIConfig struct {
	AnimationInterval time.Duration `mapstructure:"animation_interval"` // main screen animation tick
	WaveInterval      time.Duration `mapstructure:"wave_interval"`      // wave viewer playback tick
	DefaultScenario   int           `mapstructure:"default_scenario"`   // scenario shown on wave viewer entry
}

// AssetsConfig controls the logo image pipeline.
type AssetsConfig struct {
	LogoPath        string `mapstructure:"logo_path"`         // original logo image
	LogoCachePath   string `mapstructure:"logo_cache_path"`   // downsized cache written next to it
	LogoTargetWidth int    `mapstructure:"logo_target_width"` // cache width in pixels
	ResizeLogo      bool   `mapstructure:"resize_logo"`       // disable to always use the original
}

// LoggingConfig controls the file-backed logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  string `mapstructure:"file"`  // log file path
}

// Default returns the configuration used when no file overrides anything.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			AnimationInterval: 40 * time.Millisecond,
			WaveInterval:      150 * time.Millisecond,
			DefaultScenario:   3,
		},
		Assets: AssetsConfig{
			LogoPath:        "images/SDRLogoDark.png",
			LogoCachePath:   "images/.sdrforge_logo_small.png",
			LogoTargetWidth: 460,
			ResizeLogo:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "sdrforge.log",
		},
	}
}

// Load reads sdrforge.yaml from the working directory when present and
// applies it over the defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("sdrforge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("SDRFORGE")
	v.AutomaticEnv()

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
