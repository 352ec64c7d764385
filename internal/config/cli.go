package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	User          string
	Cmd           string
	ReportDir     string
	Port          uint
	DisableNotify bool
	NoSound       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			User:          ctx.String("user"),
			Cmd:           ctx.String("cmd"),
			ReportDir:     ctx.String("dir"),
			Port:          ctx.Uint("port"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoSound:       ctx.Bool("no-sound"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if u := strings.TrimSpace(opts.User); u != "" {
		c.User.ID = u
	}

	if opts.Cmd != "" {
		c.Settings.Cmd = opts.Cmd
	}

	if opts.ReportDir != "" {
		c.Report.Dir = opts.ReportDir
	}

	if opts.Port > 0 {
		c.Server.Port = opts.Port
	}

	if opts.DisableNotify {
		c.Settings.Notify = false
	}

	if opts.NoSound {
		c.Settings.Sound = false
	}
}
