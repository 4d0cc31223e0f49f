package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenmoini/unifi-facts/api/controller"
)

// queryFlags parses args against a fresh query command and returns its
// flag set, the same shape LoadConfig sees at runtime.
func queryFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	cmd := newQueryCmd()
	require.NoError(t, cmd.ParseFlags(args))
	return cmd.Flags()
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "unifi-facts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	flags := queryFlags(t,
		"--base-url", "https://unifi.example.com:8443",
		"--username", "admin",
		"--password", "secret",
	)

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, controller.DefaultSite, cfg.Site)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, controller.DefaultRateLimit, cfg.RateLimitPerMinute)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Insecure)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
base_url: https://unifi.example.com:8443
username: readonly
password: file-secret
site: branch-office
insecure: true
timeout_seconds: 60
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://unifi.example.com:8443", cfg.BaseURL)
	assert.Equal(t, "readonly", cfg.Username)
	assert.Equal(t, "file-secret", cfg.Password)
	assert.Equal(t, "branch-office", cfg.Site)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfigFile(t, `
base_url: https://unifi.example.com:8443
username: file-user
password: file-secret
site: file-site
`)

	// Env beats the file.
	t.Setenv("UNIFI_FACTS_USERNAME", "env-user")
	t.Setenv("UNIFI_FACTS_SITE", "env-site")

	// Flags beat env.
	flags := queryFlags(t, "--site", "flag-site")

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "https://unifi.example.com:8443", cfg.BaseURL, "file value survives")
	assert.Equal(t, "env-user", cfg.Username, "env overrides file")
	assert.Equal(t, "flag-site", cfg.Site, "flag overrides env")
	assert.Equal(t, "file-secret", cfg.Password, "file value survives")
}

func TestLoadConfigFlagShortcuts(t *testing.T) {
	flags := queryFlags(t,
		"--base-url", "https://unifi.example.com:8443",
		"--username", "admin",
		"--password", "secret",
		"--timeout", "90",
		"--rate-limit=-1",
	)

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.TimeoutSeconds)
	assert.Equal(t, controller.RateLimitDisabled, cfg.RateLimitPerMinute)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing password",
			args: []string{
				"--base-url", "https://unifi.example.com:8443",
				"--username", "admin",
			},
		},
		{
			name: "missing base url",
			args: []string{
				"--username", "admin",
				"--password", "secret",
			},
		},
		{
			name: "base url is not a url",
			args: []string{
				"--base-url", "not a url",
				"--username", "admin",
				"--password", "secret",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig("", queryFlags(t, tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), queryFlags(t))
	assert.Error(t, err)
}
