package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octofit/octofit/internal/config"
)

// isolateEnv points OCTOFIT_HOME at a temp dir and clears the env overrides.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, key := range []string{
		config.EnvWorkspace, config.EnvCodespaceName, config.EnvBaseURL,
		config.EnvLogLevel, config.EnvLogFormat, config.EnvOTLPEndpoint, config.EnvProjectDir,
	} {
		t.Setenv(key, "")
	}
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func TestDefault(t *testing.T) {
	home := isolateEnv(t)

	cfg := config.Default()

	assert.Equal(t, config.DefaultDomain, cfg.API.Domain)
	assert.Equal(t, config.DefaultPort, cfg.API.Port)
	assert.Equal(t, config.DefaultTimeout, cfg.API.Timeout)
	assert.False(t, cfg.API.FollowPages)
	assert.Equal(t, "en-US", cfg.Display.Locale)
	assert.Equal(t, "table", cfg.Display.Output)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
}

func TestAPIConfig_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		api      config.APIConfig
		resource string
		want     string
	}{
		{
			name:     "derived from workspace",
			api:      config.APIConfig{Workspace: "fluffy-space-7x", Domain: "app.github.dev", Port: 8000},
			resource: "activities",
			want:     "https://fluffy-space-7x-8000.app.github.dev/api/activities/",
		},
		{
			name:     "custom domain and port",
			api:      config.APIConfig{Workspace: "ws", Domain: ".example.com.", Port: 9000},
			resource: "leaderboard",
			want:     "https://ws-9000.example.com/api/leaderboard/",
		},
		{
			name:     "base url override wins",
			api:      config.APIConfig{Workspace: "ignored", BaseURL: "http://localhost:8000/api/"},
			resource: "/teams/",
			want:     "http://localhost:8000/api/teams/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.api.Endpoint(tt.resource))
		})
	}
}

func TestAPIConfig_Validate(t *testing.T) {
	valid := config.Default().API
	valid.Workspace = "ws"

	tests := []struct {
		name    string
		mutate  func(a *config.APIConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*config.APIConfig) {}},
		{name: "missing workspace", mutate: func(a *config.APIConfig) { a.Workspace = " " }, wantErr: config.ErrMissingWorkspace},
		{
			name:   "base url makes workspace optional",
			mutate: func(a *config.APIConfig) { a.Workspace = ""; a.BaseURL = "http://127.0.0.1:9/api" },
		},
		{name: "relative base url", mutate: func(a *config.APIConfig) { a.BaseURL = "/api" }, wantErr: config.ErrInvalidBaseURL},
		{name: "ftp base url", mutate: func(a *config.APIConfig) { a.BaseURL = "ftp://host/api" }, wantErr: config.ErrInvalidBaseURL},
		{name: "bad port", mutate: func(a *config.APIConfig) { a.Port = 0 }, wantErr: config.ErrInvalidPort},
		{name: "zero timeout", mutate: func(a *config.APIConfig) { a.Timeout = 0 }, wantErr: config.ErrInvalidTimeout},
		{name: "zero max pages", mutate: func(a *config.APIConfig) { a.MaxPages = 0 }, wantErr: config.ErrInvalidMaxPages},
		{name: "zero page rate", mutate: func(a *config.APIConfig) { a.PageRate = 0 }, wantErr: config.ErrInvalidPageRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := valid
			tt.mutate(&api)
			err := api.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	isolateEnv(t)

	cfg := config.Default()
	cfg.Display.Output = "xml"
	cfg.Logging.Format = "text"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingWorkspace)
	assert.ErrorIs(t, err, config.ErrInvalidOutput)
	assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
}

func TestLoad_FileAndEnv(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  workspace: from-file
  port: 9000
  timeout: 5s
display:
  locale: de-DE
logging:
  level: error
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.API.Workspace)
	assert.Equal(t, 9000, cfg.API.Port)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, config.DefaultDomain, cfg.API.Domain, "absent keys keep defaults")
	assert.Equal(t, "de-DE", cfg.Display.Locale)
	assert.Equal(t, "error", cfg.Logging.Level)

	t.Setenv(config.EnvWorkspace, "from-env")
	t.Setenv(config.EnvLogLevel, "debug")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.API.Workspace)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	isolateEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.API.Port)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  workspace: on-disk\n"), 0o600))
	t.Setenv(config.EnvWorkspace, "from-env")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "on-disk", cfg.API.Workspace)
	assert.Equal(t, path, cfg.ConfigPath())
}

func TestApplyEnv_CodespaceNameFallback(t *testing.T) {
	env := map[string]string{config.EnvCodespaceName: "codespace-123"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := &config.Config{}
	cfg.ApplyEnv(lookup)
	assert.Equal(t, "codespace-123", cfg.API.Workspace)

	cfg = &config.Config{API: config.APIConfig{Workspace: "from-file"}}
	cfg.ApplyEnv(lookup)
	assert.Equal(t, "from-file", cfg.API.Workspace, "CODESPACE_NAME does not override an explicit workspace")

	env[config.EnvWorkspace] = "explicit"
	cfg.ApplyEnv(lookup)
	assert.Equal(t, "explicit", cfg.API.Workspace)
}

func TestSave_RoundTrip(t *testing.T) {
	isolateEnv(t)

	cfg := config.Default()
	cfg.SetConfigPath(filepath.Join(t.TempDir(), "nested", "config.yaml"))
	cfg.API.Workspace = "saved-ws"
	cfg.API.Timeout = 12 * time.Second
	require.NoError(t, cfg.Save())

	loaded, err := config.Load(cfg.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "saved-ws", loaded.API.Workspace)
	assert.Equal(t, 12*time.Second, loaded.API.Timeout)
}

func TestGetGlobalConfig_Singleton(t *testing.T) {
	isolateEnv(t)

	first := config.GetGlobalConfig()
	assert.Same(t, first, config.GetGlobalConfig())

	replacement := config.Default()
	config.SetGlobalConfig(replacement)
	assert.Same(t, replacement, config.GetGlobalConfig())
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "console"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", out.Output)

	lc.File = "/tmp/octofit.log"
	out = lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/octofit.log", out.File)
}
