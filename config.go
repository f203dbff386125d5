package main

import (
	"flag"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// config holds the dev server settings. Environment variables provide the
// defaults and command-line flags override them.
type config struct {
	Port     int    `envconfig:"PORT" default:"80"`
	TLS      bool   `envconfig:"TLS" default:"false"`
	BasePath string `envconfig:"BASE_PATH" default:""`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

const envPrefix = "GOWEBDOM"

func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (c *config) registerFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Port, "port", c.Port, "http port to listen on")
	fs.BoolVar(&c.TLS, "tls", c.TLS, "enable HTTPS with a self-signed certificate")
	fs.StringVar(&c.BasePath, "base_path", c.BasePath, "base path to serve on, e.g. '/foo/'")
	fs.StringVar(&c.LogLevel, "log_level", c.LogLevel, "logrus level, e.g. 'debug'")
}
