package config

import (
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		User      UserConfig      `mapstructure:"user"`
		Settings  SettingsConfig  `mapstructure:"settings"`
		Display   DisplayConfig   `mapstructure:"display"`
		Report    ReportConfig    `mapstructure:"report"`
		Server    ServerConfig    `mapstructure:"server"`
		Nutrition NutritionConfig `mapstructure:"nutrition"`
		System    SystemConfig    `mapstructure:"-"`
	}

	// UserConfig identifies whose workouts are read and written
	UserConfig struct {
		ID string `mapstructure:"id"`
	}

	// SettingsConfig holds behaviour settings
	SettingsConfig struct {
		Cmd      string `mapstructure:"cmd"`
		LogLevel string `mapstructure:"log_level"`
		Sound    bool   `mapstructure:"sound"`
		Notify   bool   `mapstructure:"notify"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// ReportConfig holds export settings
	ReportConfig struct {
		Dir string `mapstructure:"dir"`
	}

	// ServerConfig holds progress server settings
	ServerConfig struct {
		Port uint `mapstructure:"port"`
	}

	// NutritionConfig holds diet assistant settings
	NutritionConfig struct {
		Endpoint string `mapstructure:"endpoint"`
		Model    string `mapstructure:"model"`
		APIKey   string `mapstructure:"api_key"`
	}

	// SystemConfig holds resolved file locations
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths records where the config, database and log files live.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath: configPath,
			DBPath:     dbPath,
			LogPath:    logPath,
		}

		return nil
	}
}
