package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "axie_backend", cfg.DB.Name)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, "15m", cfg.JWT.AccessTTL.String())
	assert.Equal(t, "10s", cfg.Marketplace.Timeout.String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("AXIE_API_URL", "https://api-gateway.skymavis.com/graphql/marketplace")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "https://api-gateway.skymavis.com/graphql/marketplace", cfg.Marketplace.BaseURL)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.True(t, cfg.DB.RunMigrations)
}

func TestLoad_ContractAddress(t *testing.T) {
	t.Run("lowercase input is checksummed", func(t *testing.T) {
		t.Setenv("CONTRACT_ADDRESS", "0xbb0e17ef65f82ab018d8edd776e8dd940327b28b")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "0xBB0E17EF65F82ab018d8EDd776e8DD940327B28b", cfg.Ethereum.ContractAddress)
	})

	t.Run("malformed address fails at startup", func(t *testing.T) {
		t.Setenv("CONTRACT_ADDRESS", "not-an-address")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("empty address is allowed", func(t *testing.T) {
		t.Setenv("CONTRACT_ADDRESS", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.Ethereum.ContractAddress)
	})
}
