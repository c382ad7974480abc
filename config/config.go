// Package config holds the runtime configuration of the service.
//
// Values come from command line flags, falling back to environment variables
// (which may themselves come from a .env file) and then to defaults.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"NumberClassifierService/funfact"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Config holds all runtime configuration.
type Config struct {
	Host string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`

	// Base URL of the numbers API, without the /<n>/math suffix.
	NumbersAPIURL     string        `validate:"required,url"`
	NumbersAPITimeout time.Duration `validate:"gt=0"`

	LogLevel           string   `validate:"oneof=panic fatal error warn warning info debug trace"`
	CORSAllowedOrigins []string `validate:"min=1,dive,required"`
}

// Flags returns the command line flags that Load reads.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Usage:   "interface to bind",
			Value:   "0.0.0.0",
			EnvVars: []string{"HOST"},
		},
		&cli.IntFlag{
			Name:    "port",
			Usage:   "port to listen on",
			Value:   5001,
			EnvVars: []string{"PORT"},
		},
		&cli.StringFlag{
			Name:    "numbers-api-url",
			Usage:   "base URL of the numbers API",
			Value:   funfact.DefaultBaseURL,
			EnvVars: []string{"NUMBERS_API_URL"},
		},
		&cli.DurationFlag{
			Name:    "numbers-api-timeout",
			Usage:   "timeout for a single numbers API request",
			Value:   3 * time.Second,
			EnvVars: []string{"NUMBERS_API_TIMEOUT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "logrus level",
			Value:   "info",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringSliceFlag{
			Name:    "cors-allowed-origins",
			Usage:   "origins allowed to call the API",
			Value:   cli.NewStringSlice("*"),
			EnvVars: []string{"CORS_ALLOWED_ORIGINS"},
		},
	}
}

// Load builds a Config from the parsed flags and validates it.
func Load(c *cli.Context) (*Config, error) {
	cfg := &Config{
		Host:               c.String("host"),
		Port:               c.Int("port"),
		NumbersAPIURL:      c.String("numbers-api-url"),
		NumbersAPITimeout:  c.Duration("numbers-api-timeout"),
		LogLevel:           c.String("log-level"),
		CORSAllowedOrigins: c.StringSlice("cors-allowed-origins"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// NewLogger returns a JSON logrus logger at the configured level.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, nil
}
