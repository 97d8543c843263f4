// Package config loads engine configuration from kiln.yaml with KILN_
// environment variable overrides. A missing file is not an error; the
// defaults describe a runnable windowed app.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/plus3/kiln/errs"
)

const (
	configFileName = "kiln"
	configFileType = "yaml"
	envPrefix      = "KILN"
)

// Config is the engine configuration tree.
type Config struct {
	Window WindowSection `mapstructure:"window"`
	Render RenderSection `mapstructure:"render"`
	Asset  AssetSection  `mapstructure:"asset"`
	Log    LogSection    `mapstructure:"log"`
}

// WindowSection configures the host window.
type WindowSection struct {
	Title      string `mapstructure:"title"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	Resizable  bool   `mapstructure:"resizable"`
	VSync      bool   `mapstructure:"vsync"`
}

// RenderSection configures the frame loop and clear color.
type RenderSection struct {
	TargetTPS  int    `mapstructure:"target_tps"`
	ClearColor string `mapstructure:"clear_color"`
}

// AssetSection configures the asset server.
type AssetSection struct {
	Root      string `mapstructure:"root"`
	HotReload bool   `mapstructure:"hot_reload"`
}

// LogSection configures structured logging.
type LogSection struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "kiln")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.resizable", true)
	v.SetDefault("window.vsync", true)

	v.SetDefault("render.target_tps", 60)
	v.SetDefault("render.clear_color", "#000000")

	v.SetDefault("asset.root", "assets")
	v.SetDefault("asset.hot_reload", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from the given directory, layering
// kiln.yaml over the defaults and KILN_ environment variables over both
// (KILN_WINDOW_WIDTH overrides window.width).
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errs.Wrap(errs.CategoryConfig, "reading config file", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errs.Wrap(errs.CategoryConfig, "decoding config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault loads configuration from the current directory.
func LoadDefault() (*Config, error) {
	return Load(".")
}

// Validate checks the loaded values for contradictions the engine cannot
// start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errs.ConfigKey("window size must be positive", "window.width")
	}
	if c.Render.TargetTPS <= 0 {
		return errs.ConfigKey("target tps must be positive", "render.target_tps")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errs.ConfigKey("unknown log level", "log.level")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errs.ConfigKey("unknown log format", "log.format")
	}
	return nil
}
