package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"degenlauncher/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT",
		"DEGEN_CONFIG_FILE",
		"DEGEN_SERVER_PORT",
		"DEGEN_PINNING_PINATA_JWT",
		"DEGEN_PINNING_WEB3STORAGE_TOKEN",
		"DEGEN_PINNING_FILEBASE_BUCKET",
		"DEGEN_PINNING_FILEBASE_ACCESS_KEY",
		"DEGEN_PINNING_FILEBASE_SECRET_KEY",
		"DEGEN_CORS_ALLOWED_ORIGINS",
		"DEGEN_LOG_LEVEL",
		"DEGEN_LOG_CLI_LEVEL",
		"DEGEN_SERVER_WRITE_TIMEOUT",
		"DEGEN_PINNING_PINATA_TIMEOUT_SECS",
		"DEGEN_PINNING_WEB3STORAGE_TIMEOUT_SECS",
		"DEGEN_PINNING_FILEBASE_TIMEOUT_SECS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.DefaultCLILogLevel, cfg.Log.CLILevel)
	assert.Empty(t, cfg.Pinning.Pinata.JWT)
	assert.Empty(t, cfg.Pinning.Web3Storage.Token)
	assert.Equal(t, 30, cfg.Pinning.Pinata.TimeoutSecs)
	assert.Equal(t, "https://s3.filebase.com", cfg.Pinning.Filebase.Endpoint)
	assert.False(t, cfg.Pinning.Filebase.Enabled())
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ProviderTokensFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEGEN_PINNING_PINATA_JWT", "  pinata-jwt ")
	t.Setenv("DEGEN_PINNING_WEB3STORAGE_TOKEN", "w3s-token")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "pinata-jwt", cfg.Pinning.Pinata.JWT)
	assert.Equal(t, "w3s-token", cfg.Pinning.Web3Storage.Token)
}

func TestLoad_PlaceholderTokensAreUnset(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEGEN_PINNING_PINATA_JWT", "your_pinata_jwt_here")
	t.Setenv("DEGEN_PINNING_WEB3STORAGE_TOKEN", "your_web3_storage_token_here")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Pinning.Pinata.JWT)
	assert.Empty(t, cfg.Pinning.Web3Storage.Token)
}

func TestLoad_PortEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestLoad_ExplicitServerPortWinsOverPORT(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DEGEN_SERVER_PORT", ":7000")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "degen.yaml")
	content := []byte(`
pinning:
  pinata:
    jwt: file-jwt
  filebase:
    bucket: launch-images
    access_key: AKIA
    secret_key: secret
log:
  level: warn
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("DEGEN_CONFIG_FILE", path)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "file-jwt", cfg.Pinning.Pinata.JWT)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Pinning.Filebase.Enabled())
	assert.Equal(t, "launch-images", cfg.Pinning.Filebase.Bucket)
	assert.Equal(t, 120*time.Second, cfg.Pinning.ChainTimeout())
	assert.Equal(t, 150*time.Second, cfg.Server.WriteTimeout)
}

func TestLoad_ConfigFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEGEN_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := config.Load()

	assert.Error(t, err)
}

func TestTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, config.Timeout(0))
	assert.Equal(t, 30*time.Second, config.Timeout(-1))
	assert.Equal(t, 5*time.Second, config.Timeout(5))
}

func TestLoad_WriteTimeoutCoversProviderChain(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEGEN_SERVER_WRITE_TIMEOUT", "10s")
	t.Setenv("DEGEN_PINNING_PINATA_TIMEOUT_SECS", "45")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 75*time.Second, cfg.Pinning.ChainTimeout())
	assert.Greater(t, cfg.Server.WriteTimeout, cfg.Pinning.ChainTimeout())
	assert.Equal(t, 105*time.Second, cfg.Server.WriteTimeout)
}

func TestLoad_WriteTimeoutAboveChainIsKept(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEGEN_SERVER_WRITE_TIMEOUT", "300s")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 300*time.Second, cfg.Server.WriteTimeout)
}

func TestPinningConfig_ChainTimeout(t *testing.T) {
	p := &config.PinningConfig{}
	assert.Equal(t, 60*time.Second, p.ChainTimeout())

	p.Filebase = config.FilebaseConfig{Bucket: "b", AccessKey: "k", SecretKey: "s", TimeoutSecs: 20}
	assert.Equal(t, 80*time.Second, p.ChainTimeout())
}

func TestLoad_CLILogLevelFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEGEN_LOG_CLI_LEVEL", "error")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.CLILevel)
	assert.Equal(t, "info", cfg.Log.Level)
}
