package toml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	settings, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, settings.API.BaseURL)
	assert.Equal(t, DefaultTimeout, settings.API.Timeout)
	assert.False(t, settings.API.AllowInsecureHTTP)
	assert.Equal(t, "chain", settings.Credentials.Backend)
	assert.Equal(t, filepath.Join(homeDir, ".devconnect", "credentials"), settings.Credentials.Dir)
	assert.Equal(t, "default", settings.Credentials.Profile)
	assert.Equal(t, "warn", settings.Log.Level)
	assert.Equal(t, "console", settings.Log.Format)
	assert.Equal(t, filepath.Join(homeDir, ".devconnect", "config.toml"), settings.Path)
}

func TestLoadReadsFileAndEnvironmentOverrides(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	writeConfig(t, filepath.Join(homeDir, ".devconnect", "config.toml"),
		"version = 1",
		"",
		"[api]",
		`base_url = "https://devconnect.example/api/"`,
		`timeout = "5s"`,
		"",
		"[credentials]",
		`backend = "file"`,
		`dir = "~/secrets"`,
		`profile = "work"`,
		"",
		"[log]",
		`level = "debug"`,
	)
	t.Setenv("DEVCONNECT_LOG_FORMAT", "json")
	t.Setenv("DEVCONNECT_CREDENTIALS_PROFILE", "staging")

	settings, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://devconnect.example/api/", settings.API.BaseURL)
	assert.Equal(t, 5*time.Second, settings.API.Timeout)
	assert.Equal(t, "file", settings.Credentials.Backend)
	assert.Equal(t, filepath.Join(homeDir, "secrets"), settings.Credentials.Dir)
	assert.Equal(t, "staging", settings.Credentials.Profile)
	assert.Equal(t, "debug", settings.Log.Level)
	assert.Equal(t, "json", settings.Log.Format)
}

func TestLoadExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.toml")
	writeConfig(t, path, "[api]", "allow_insecure_http = true")

	settings, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.True(t, settings.API.AllowInsecureHTTP)
	assert.Equal(t, path, settings.Path)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantErr string
	}{
		{name: "future schema", lines: []string{"version = 9"}, wantErr: "unsupported config schema version 9"},
		{name: "unknown backend", lines: []string{"[credentials]", `backend = "vault"`}, wantErr: "credentials.backend"},
		{name: "relative base url", lines: []string{"[api]", `base_url = "devconnect"`}, wantErr: "api.base_url"},
		{name: "zero timeout", lines: []string{"[api]", `timeout = "0s"`}, wantErr: "api.timeout"},
		{name: "bad log level", lines: []string{"[log]", `level = "loud"`}, wantErr: "log.level"},
		{name: "broken toml", lines: []string{"[api"}, wantErr: "read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "config.toml")
			writeConfig(t, path, tt.lines...)

			_, err := Load(viper.New(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveWritesLoadableFileWithPrivatePermissions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := Load(viper.New(), "")
	require.NoError(t, err)
	settings.API.BaseURL = "https://devconnect.example/api/"
	settings.Credentials.Backend = "file"

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, Save(path, settings, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	reloaded, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, settings.API.BaseURL, reloaded.API.BaseURL)
	assert.Equal(t, settings.API.Timeout, reloaded.API.Timeout)
	assert.Equal(t, "file", reloaded.Credentials.Backend)

	err = Save(path, settings, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	require.NoError(t, Save(path, settings, true))

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".config-*.toml.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestEncodeIncludesSchemaVersion(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := Load(viper.New(), "")
	require.NoError(t, err)

	data, err := Encode(settings)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "30s")
}

func writeConfig(t *testing.T, path string, lines ...string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
}
