package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.IsHeadless())
	assert.Equal(t, DefaultViewportWidth, cfg.Viewport.Width)
	assert.Equal(t, DefaultViewportHeight, cfg.Viewport.Height)
	assert.Equal(t, DefaultWaitUntil, cfg.WaitUntil)
	assert.Equal(t, DefaultActionTimeout, cfg.ActionTimeout)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPartialFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
viewport:
  width: 1920
  height: 1080
allowed_hosts:
  - "*.example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Viewport.Width)
	assert.Equal(t, 1080, cfg.Viewport.Height)
	assert.True(t, cfg.IsHeadless())
	assert.Equal(t, DefaultWaitUntil, cfg.WaitUntil)
	assert.Equal(t, []string{"*.example.com"}, cfg.AllowedHosts)
}

func TestLoadHeadlessFalse(t *testing.T) {
	path := writeConfig(t, "headless: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.IsHeadless())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "viewport too small",
			mutate:  func(c *Config) { c.Viewport.Width = 10 },
			wantErr: "viewport width",
		},
		{
			name:    "viewport too large",
			mutate:  func(c *Config) { c.Viewport.Height = 9000 },
			wantErr: "viewport height",
		},
		{
			name:    "bad wait_until",
			mutate:  func(c *Config) { c.WaitUntil = "eventually" },
			wantErr: "invalid wait_until",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.ActionTimeout = -1 },
			wantErr: "action_timeout",
		},
		{
			name:    "bad host pattern",
			mutate:  func(c *Config) { c.AllowedHosts = []string{"[invalid"} },
			wantErr: "allowed_hosts pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCompileAllowedHosts(t *testing.T) {
	cfg := Default()
	cfg.AllowedHosts = []string{"example.com", "*.example.org"}

	globs, err := cfg.CompileAllowedHosts()
	require.NoError(t, err)
	require.Len(t, globs, 2)

	assert.True(t, globs[0].Match("example.com"))
	assert.True(t, globs[1].Match("docs.example.org"))
	assert.False(t, globs[1].Match("example.net"))
}

func TestCompileAllowedHostsEmpty(t *testing.T) {
	globs, err := Default().CompileAllowedHosts()
	require.NoError(t, err)
	assert.Nil(t, globs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pilot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
