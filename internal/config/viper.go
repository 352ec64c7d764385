package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/fitfusion/fusion/internal/osutil"
)

// EnvPrefix namespaces environment overrides, e.g. FUSION_NUTRITION_API_KEY.
const EnvPrefix = "FUSION"

const (
	keyUserID            = "user.id"
	keySound             = "settings.sound"
	keyNotify            = "settings.notify"
	keyCmd               = "settings.cmd"
	keyLogLevel          = "settings.log_level"
	keyDarkTheme         = "display.dark_theme"
	keyTwentyFourHour    = "display.24hr_clock"
	keyReportDir         = "report.dir"
	keyServerPort        = "server.port"
	keyNutritionEndpoint = "nutrition.endpoint"
	keyNutritionModel    = "nutrition.model"
	keyNutritionAPIKey   = "nutrition.api_key"
)

const (
	DefaultUserID            = "default"
	DefaultServerPort        = 1111
	DefaultNutritionEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultNutritionModel    = "gemini-2.0-flash"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A config file populated with the defaults is written when none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				return errReadConfig.Wrap(err)
			}

			err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
			if err != nil {
				return errWriteConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		// enabled after the defaults are written so that secrets passed
		// through the environment never end up in the file
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		return v.Unmarshal(c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyUserID, DefaultUserID)
	v.SetDefault(keySound, true)
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyCmd, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyReportDir, ".")
	v.SetDefault(keyServerPort, DefaultServerPort)
	v.SetDefault(keyNutritionEndpoint, DefaultNutritionEndpoint)
	v.SetDefault(keyNutritionModel, DefaultNutritionModel)
	v.SetDefault(keyNutritionAPIKey, "")
}
