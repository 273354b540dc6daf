package cli

import (
	"github.com/altheman/website"
	"github.com/altheman/website/core"
	"github.com/urfave/cli/v2"
)

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to the site config file",
			Value: core.DefaultConfigPath,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "trace, debug, info, notice, warning, error or critical (default: $LOG_LEVEL, then info)",
		},
		&cli.StringFlag{
			Name:  "templates",
			Usage: "directory scanned for " + core.TemplateExt + " templates",
		},
		&cli.StringFlag{
			Name:  "asset",
			Usage: "stylesheet served at " + core.AssetRoute,
		},
	}
}

func serveFlags() []cli.Flag {
	return append(configFlags(),
		&cli.StringFlag{
			Name:    "hostname",
			Aliases: []string{"H"},
			Usage:   "interface to listen on",
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "port to listen on",
		},
	)
}

// configFromContext loads the config file and applies any flags the user set.
// An empty env keeps the value from the file.
func configFromContext(c *cli.Context, env string) (core.Config, error) {
	cfg, err := core.LoadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if env != "" {
		cfg.Env = env
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("templates") {
		cfg.TemplatesDir = c.String("templates")
	}
	if c.IsSet("asset") {
		cfg.AssetPath = c.String("asset")
	}
	if c.IsSet("hostname") {
		cfg.Hostname = c.String("hostname")
	}
	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}

	return cfg, nil
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Serve the site in dev mode (text logs, browser reload on stylesheet changes)",
	Flags: serveFlags(),
	Action: func(c *cli.Context) error {
		cfg, err := configFromContext(c, "dev")
		if err != nil {
			return err
		}
		return website.Start(cfg)
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Serve the site in production mode (JSON logs)",
	Flags: serveFlags(),
	Action: func(c *cli.Context) error {
		cfg, err := configFromContext(c, "prod")
		if err != nil {
			return err
		}
		return website.Start(cfg)
	},
}
