package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Origin   string `env:"TEST_API_ORIGIN" envDefault:"http://localhost:3000"`
	LogLevel string `env:"TEST_LOG_LEVEL" envDefault:"info"`
	Timeout  int    `env:"TEST_TIMEOUT" envDefault:"30"`
}

func TestLoad_Defaults(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, Load(cfg))

	assert.Equal(t, "http://localhost:3000", cfg.Origin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30, cfg.Timeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_API_ORIGIN", "https://api.example.com")
	t.Setenv("TEST_TIMEOUT", "5")

	cfg := &testConfig{}
	require.NoError(t, Load(cfg))

	assert.Equal(t, "https://api.example.com", cfg.Origin)
	assert.Equal(t, 5, cfg.Timeout)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "not-a-number")

	cfg := &testConfig{}
	assert.Error(t, Load(cfg))
}
