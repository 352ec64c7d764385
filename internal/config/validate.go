package config

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
)

const maxPort = 65535

var userIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._@-]*$`)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if !userIDRegex.MatchString(c.User.ID) {
		return errInvalidUserID.Fmt(c.User.ID)
	}

	if err := c.validateSettings(); err != nil {
		return err
	}

	if c.Server.Port == 0 || c.Server.Port > maxPort {
		return errInvalidPort.Fmt(c.Server.Port)
	}

	u, err := url.Parse(c.Nutrition.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errInvalidEndpoint.Fmt(c.Nutrition.Endpoint)
	}

	if strings.TrimSpace(c.Nutrition.Model) == "" {
		return errEmptyModel
	}

	return nil
}

// validateSettings validates the SettingsConfig.
func (c *Config) validateSettings() error {
	if _, err := ParseLogLevel(c.Settings.LogLevel); err != nil {
		return err
	}

	if c.Settings.Cmd != "" {
		if _, err := shellquote.Split(c.Settings.Cmd); err != nil {
			return errInvalidCmd.Wrap(err)
		}
	}

	return nil
}

// ParseLogLevel maps a config value onto a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	if err != nil {
		return level, errInvalidLogLevel.Fmt(s)
	}

	return level, nil
}
