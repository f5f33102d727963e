package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTokens(t *testing.T) {
	t.Run("default tokens are valid", func(t *testing.T) {
		config := DefaultConfig()
		assert.NoError(t, ValidateTokens(&config.Tokens))
	})

	t.Run("rejects empty token", func(t *testing.T) {
		tokens := TokensConfig{Save: "s", Back: "", Delete: "d", Exit: "q"}
		assert.Error(t, ValidateTokens(&tokens))
	})

	t.Run("rejects selection digit", func(t *testing.T) {
		tokens := TokensConfig{Save: "1", Back: "b", Delete: "d", Exit: "q"}
		assert.Error(t, ValidateTokens(&tokens))
	})

	t.Run("rejects duplicated tokens", func(t *testing.T) {
		tokens := TokensConfig{Save: "x", Back: "x", Delete: "d", Exit: "q"}
		assert.Error(t, ValidateTokens(&tokens))
	})
}

func TestInitConfig(t *testing.T) {
	t.Run("keeps build values when provided", func(t *testing.T) {
		config := DefaultConfig()
		require.NoError(t, InitConfig(config, "abc123", "v1.0.0", "2023-07-02"))
		assert.Equal(t, "abc123", config.GitCommit)
		assert.Equal(t, "v1.0.0", config.GitTag)
		assert.Equal(t, "2023-07-02", config.BuildTime)
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		config := DefaultConfig()
		config.Storage.Backend = "postgres"
		assert.Error(t, InitConfig(config, "", "", ""))
	})

	t.Run("bolt backend needs a file path", func(t *testing.T) {
		config := DefaultConfig()
		config.Storage.Backend = BackendBolt
		config.BoltDB.FilePath = ""
		assert.Error(t, InitConfig(config, "", "", ""))
	})

	t.Run("redis backend needs an address", func(t *testing.T) {
		config := DefaultConfig()
		config.Storage.Backend = BackendRedis
		config.Redis.Host = ""
		assert.Error(t, InitConfig(config, "", "", ""))
	})
}

func TestLoadConfigFileMissing(t *testing.T) {
	// a missing file is surfaced so LoadAndInitConfigs can fall back
	// to the defaults.
	_, err := LoadConfigFile("does-not-exist.yml")
	assert.Error(t, err)
}
