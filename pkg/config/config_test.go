package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("CONVERT_ENDPOINT", "")
	t.Setenv("CONVERT_TIMEOUT", "")
	t.Setenv("CONVERT_DEBUG", "")

	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080/submit", cfg.Endpoint)
	assert.Equal(t, 0, cfg.TimeoutSec)
	assert.Equal(t, 8090, cfg.APIPort)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServiceBase)
	assert.False(t, cfg.APIMode)
}

func TestParse_Flags(t *testing.T) {
	t.Setenv("CONVERT_ENDPOINT", "")
	t.Setenv("CONVERT_TIMEOUT", "")
	t.Setenv("CONVERT_DEBUG", "")

	cfg, err := Parse([]string{
		"-url", "https://youtu.be/dQw4w9WgXcQ",
		"-endpoint", "https://convert.example.com/submit",
		"-timeout", "15",
		"-api", "-port", "9000",
		"-service", "https://files.example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", cfg.VideoURL)
	assert.Equal(t, "https://convert.example.com/submit", cfg.Endpoint)
	assert.Equal(t, 15, cfg.TimeoutSec)
	assert.True(t, cfg.APIMode)
	assert.Equal(t, 9000, cfg.APIPort)
	assert.Equal(t, "https://files.example.com", cfg.ServiceBase)
}

func TestParse_EnvOverridesFlags(t *testing.T) {
	t.Setenv("CONVERT_ENDPOINT", "http://svc:8080/submit")
	t.Setenv("CONVERT_TIMEOUT", "30")
	t.Setenv("CONVERT_DEBUG", "true")

	cfg, err := Parse([]string{"-endpoint", "http://other/submit"})
	require.NoError(t, err)

	assert.Equal(t, "http://svc:8080/submit", cfg.Endpoint)
	assert.Equal(t, 30, cfg.TimeoutSec)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "http://svc:8080", cfg.ServiceBase)
}

func TestParse_Invalid(t *testing.T) {
	t.Setenv("CONVERT_ENDPOINT", "")
	t.Setenv("CONVERT_DEBUG", "")

	t.Setenv("CONVERT_TIMEOUT", "soon")
	_, err := Parse(nil)
	assert.Error(t, err)

	t.Setenv("CONVERT_TIMEOUT", "")
	_, err = Parse([]string{"-endpoint", "/submit"})
	assert.Error(t, err)

	_, err = Parse([]string{"-timeout", "-1"})
	assert.Error(t, err)

	_, err = Parse([]string{"-api", "-port", "0"})
	assert.Error(t, err)
}
