package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NotNil(t, cfg)
	assert.False(t, cfg.NotificationConfig.Enabled)
	assert.True(t, cfg.NotificationConfig.NotifyAllExceptions)
	assert.True(t, cfg.NotificationConfig.RateLimit.Enabled)
	assert.Equal(t, DefaultRateLimitMaxNotifications, cfg.NotificationConfig.RateLimit.MaxNotifications)
	assert.Equal(t, DefaultRateLimitPerMinutes, cfg.NotificationConfig.RateLimit.PerMinutes)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultCounterDBPath, cfg.StorageConfig.CounterDBPath)
}

func TestLoadGlobalConfig_NoConfigFile(t *testing.T) {
	t.Setenv("ERRNOTIFY_CONFIG_PATH", "")
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	cfg, err := LoadGlobalConfig("")

	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.False(t, cfg.NotificationConfig.Enabled)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json")

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configData := `
log_config:
  log_level: debug
notification_config:
  enabled: true
  slack_webhook_url: https://hooks.slack.com/services/T000/B000/XXX
  channel: "#alerts"
  ignored_exceptions:
    - NotFoundError
  rate_limit:
    enabled: true
    max_notifications: 3
    per_minutes: 10
`
	err := os.WriteFile(configFile, []byte(configData), 0644)
	require.NoError(t, err)

	cfg, err := LoadGlobalConfig(configFile)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.True(t, cfg.NotificationConfig.Enabled)
	assert.Equal(t, "#alerts", cfg.NotificationConfig.Channel)
	assert.Equal(t, []string{"NotFoundError"}, cfg.NotificationConfig.IgnoredExceptions)
	assert.Equal(t, 3, cfg.NotificationConfig.RateLimit.MaxNotifications)
	assert.Equal(t, 10, cfg.NotificationConfig.RateLimit.PerMinutes)
	// Unspecified sections keep their defaults
	assert.Equal(t, DefaultSlackUsername, cfg.NotificationConfig.Username)
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.json")

	configData := `{
		"notification_config": {
			"enabled": true,
			"slack_webhook_url": "https://hooks.slack.com/services/T000/B000/XXX"
		}
	}`
	err := os.WriteFile(configFile, []byte(configData), 0644)
	require.NoError(t, err)

	cfg, err := LoadGlobalConfig(configFile)

	require.NoError(t, err)
	assert.True(t, cfg.NotificationConfig.Enabled)
}

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_InvalidWebhookURL(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.NotificationConfig.SlackWebhookURL = "not a url"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_InvalidColor(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.NotificationConfig.ColorMapping = map[string]string{"RuntimeFailure": "reddish"}

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_NamedSlackColors(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.NotificationConfig.ColorMapping = map[string]string{
		"RuntimeFailure": "danger",
		"SlowQuery":      "#ffcc00",
	}

	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_RateLimitRules(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.NotificationConfig.RateLimit = RateLimitConfig{Enabled: true, MaxNotifications: 0, PerMinutes: 5}
	assert.Error(t, ValidateConfig(cfg))

	cfg.NotificationConfig.RateLimit = RateLimitConfig{Enabled: true, MaxNotifications: 5, PerMinutes: 0}
	assert.Error(t, ValidateConfig(cfg))

	cfg.NotificationConfig.RateLimit = RateLimitConfig{Enabled: true, MaxNotifications: -1, PerMinutes: -1}
	assert.Error(t, ValidateConfig(cfg))

	// A disabled limiter may carry zero values
	cfg.NotificationConfig.RateLimit = RateLimitConfig{Enabled: false}
	assert.NoError(t, ValidateConfig(cfg))
}

func TestGetConfigPath_EnvVariable(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("{}"), 0644))

	t.Setenv("ERRNOTIFY_CONFIG_PATH", configFile)

	assert.Equal(t, configFile, GetConfigPath(""))
}

func TestGetConfigPath_FlagWins(t *testing.T) {
	t.Setenv("ERRNOTIFY_CONFIG_PATH", "/somewhere/else.yaml")

	assert.Equal(t, "/explicit/config.yaml", GetConfigPath("/explicit/config.yaml"))
}
