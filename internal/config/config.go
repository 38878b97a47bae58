// Package config loads the application configuration from environment
// variables into a single immutable Config that is passed into the
// components that need it. No component reads the environment after startup.
package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Marketplace MarketplaceConfig
	Ethereum    EthereumConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `envconfig:"SERVER_ADDR" default:":8080"`
}

// DBConfig holds MySQL connection settings.
type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"3306"`
	User          string `envconfig:"DB_USER" default:"root"`
	Password      string `envconfig:"DB_PASSWORD" default:""`
	Name          string `envconfig:"DB_NAME" default:"axie_backend"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"false"`
}

// RedisConfig holds Redis connection settings for the session store.
// An empty host disables Redis and the session store falls back to MySQL.
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:""`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
}

// JWTConfig holds access token signing settings.
type JWTConfig struct {
	Secret     string        `envconfig:"JWT_SECRET" default:""`
	AccessTTL  time.Duration `envconfig:"JWT_ACCESS_TTL" default:"15m"`
	RefreshTTL time.Duration `envconfig:"JWT_REFRESH_TTL" default:"720h"`
}

// MarketplaceConfig holds settings for the Axie marketplace GraphQL API.
type MarketplaceConfig struct {
	BaseURL string        `envconfig:"AXIE_API_URL" default:""`
	APIKey  string        `envconfig:"AXIE_API_KEY" default:""`
	Timeout time.Duration `envconfig:"AXIE_API_TIMEOUT" default:"10s"`
}

// EthereumConfig holds the JSON-RPC endpoint and the AXS token contract address.
type EthereumConfig struct {
	RPCURL          string `envconfig:"ETH_RPC_URL" default:""`
	ContractAddress string `envconfig:"CONTRACT_ADDRESS" default:""`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
//
// The contract address is validated here so a malformed address fails the
// process at startup rather than on the first contract call.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if cfg.Ethereum.ContractAddress != "" {
		if !common.IsHexAddress(cfg.Ethereum.ContractAddress) {
			return Config{}, fmt.Errorf("invalid CONTRACT_ADDRESS %q", cfg.Ethereum.ContractAddress)
		}
		// Normalize to the EIP-55 checksummed form once, at startup.
		cfg.Ethereum.ContractAddress = common.HexToAddress(cfg.Ethereum.ContractAddress).Hex()
	}

	return cfg, nil
}
