package core

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath   = "site.config.yml"
	DefaultHostname     = "127.0.0.1"
	DefaultPort         = 8080
	DefaultTemplatesDir = "resources/templates"
	DefaultAssetPath    = "public/system.css"

	LogLevelEnv = "LOG_LEVEL"
)

type Config struct {
	Hostname     string `yaml:"hostname"`
	Port         int    `yaml:"port"`
	LogLevel     string `yaml:"logLevel,omitempty"`
	Env          string `yaml:"env"`
	TemplatesDir string `yaml:"templatesDir"`
	AssetPath    string `yaml:"assetPath"`
	Minify       bool   `yaml:"minify"`
	DebugHeaders bool   `yaml:"debugHeaders"`
}

func DefaultConfig() Config {
	return Config{
		Hostname:     DefaultHostname,
		Port:         DefaultPort,
		Env:          "prod",
		TemplatesDir: DefaultTemplatesDir,
		AssetPath:    DefaultAssetPath,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. A missing file
// is not an error; the defaults are returned as-is.
var LoadConfig = func(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Hostname == "" {
		c.Hostname = def.Hostname
	}
	if c.Port == 0 {
		c.Port = def.Port
	}
	if c.Env == "" {
		c.Env = def.Env
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = def.TemplatesDir
	}
	if c.AssetPath == "" {
		c.AssetPath = def.AssetPath
	}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Hostname, strconv.Itoa(c.Port))
}

func (c Config) IsDev() bool {
	return c.Env == "dev"
}

// ResolveLogLevel picks the effective level: the explicit value if set, then
// the LOG_LEVEL environment variable, then info.
func ResolveLogLevel(explicit string, getenv func(string) string) (slog.Level, error) {
	if explicit != "" {
		return ParseLogLevel(explicit)
	}
	if getenv != nil {
		if v := getenv(LogLevelEnv); v != "" {
			return ParseLogLevel(v)
		}
	}
	return slog.LevelInfo, nil
}
