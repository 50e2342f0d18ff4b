package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octofit/octofit/internal/config"
)

func TestConfig_SetAndGet(t *testing.T) {
	isolateEnv(t)
	cfg := config.Default()

	tests := []struct {
		key   string
		value string
		check func(t *testing.T, c *config.Config)
	}{
		{"api.workspace", "my-space", func(t *testing.T, c *config.Config) { assert.Equal(t, "my-space", c.API.Workspace) }},
		{"api.port", "8080", func(t *testing.T, c *config.Config) { assert.Equal(t, 8080, c.API.Port) }},
		{"api.timeout", "45s", func(t *testing.T, c *config.Config) { assert.Equal(t, 45*time.Second, c.API.Timeout) }},
		{"api.follow_pages", "true", func(t *testing.T, c *config.Config) { assert.True(t, c.API.FollowPages) }},
		{"display.locale", "fr-FR", func(t *testing.T, c *config.Config) { assert.Equal(t, "fr-FR", c.Display.Locale) }},
		{"Logging.Level", "debug", func(t *testing.T, c *config.Config) { assert.Equal(t, "debug", c.Logging.Level) }},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			require.NoError(t, cfg.Set(tt.key, tt.value))
			tt.check(t, cfg)

			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}

	assert.Equal(t, config.DefaultDomain, cfg.API.Domain, "setting one key leaves siblings intact")
}

func TestConfig_SetTypeMismatch(t *testing.T) {
	cfg := config.Default()
	err := cfg.Set("api.port", "not-a-number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.port")
}

func TestConfig_UnknownKey(t *testing.T) {
	cfg := config.Default()

	_, err := cfg.Get("api.nope")
	require.ErrorIs(t, err, config.ErrUnknownKey)

	err = cfg.Set("output.default_format", "json")
	require.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfig_List(t *testing.T) {
	isolateEnv(t)
	cfg := config.Default()

	values, err := cfg.List()
	require.NoError(t, err)
	assert.Len(t, values, len(config.Keys()))
	assert.Equal(t, "8000", values["api.port"])
	assert.Equal(t, "", values["api.base_url"])
	assert.Equal(t, "30s", values["api.timeout"])
}
