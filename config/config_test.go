package config

import (
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var (
		cfg     *Config
		loadErr error
	)
	app := &cli.App{
		Name:  "test",
		Flags: Flags(),
		Action: func(c *cli.Context) error {
			cfg, loadErr = Load(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"test"}, args...)))
	return cfg, loadErr
}

// unsetenv removes key for the duration of the test. An empty value would
// still count as set for the string flags.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, env := range []string{"HOST", "PORT", "NUMBERS_API_URL", "NUMBERS_API_TIMEOUT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS"} {
		unsetenv(t, env)
	}
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, "http://numbersapi.com", cfg.NumbersAPIURL)
	assert.Equal(t, 3*time.Second, cfg.NumbersAPITimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "0.0.0.0:5001", cfg.Addr())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NUMBERS_API_URL", "http://localhost:8000")
	t.Setenv("NUMBERS_API_TIMEOUT", "500ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.NumbersAPIURL)
	assert.Equal(t, 500*time.Millisecond, cfg.NumbersAPITimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := load(t, "--port", "7000", "--host", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr())
}

func TestLoad_Invalid(t *testing.T) {
	tests := [][]string{
		{"--port", "0"},
		{"--port", "70000"},
		{"--numbers-api-url", "not a url"},
		{"--numbers-api-timeout", "0s"},
		{"--log-level", "loud"},
		{"--host", ""},
	}
	for _, args := range tests {
		_, err := load(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}
	log, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}
