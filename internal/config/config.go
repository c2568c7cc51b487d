package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Seed     SeedConfig
}

// DatabaseConfig holds storage settings. DSN wins over the individual
// postgres connection fields when set.
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Migrate  bool
}

// ServerConfig holds listener settings. An empty HTTPAddr disables the REST API.
type ServerConfig struct {
	GRPCAddr string `mapstructure:"grpc_addr"`
	HTTPAddr string `mapstructure:"http_addr"`
	APIToken string `mapstructure:"api_token"`
}

type SeedConfig struct {
	Demo bool
}

// Load reads configuration from file and env. Env var overrides use prefix WEALTHCAST_.
// DB_CONN_STR and API_TOKEN are still honoured for existing deployments.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "wealthcast")
	v.SetDefault("database.migrate", true)
	v.SetDefault("server.grpc_addr", ":8080")
	v.SetDefault("server.http_addr", ":8081")
	v.SetDefault("server.api_token", "dev-token")
	v.SetDefault("seed.demo", false)

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("WEALTHCAST_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	v.SetEnvPrefix("WEALTHCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// legacy names take precedence over defaults only
	if err := v.BindEnv("database.dsn", "WEALTHCAST_DATABASE_DSN", "DB_CONN_STR"); err != nil {
		return Config{}, fmt.Errorf("bind database.dsn: %w", err)
	}
	if err := v.BindEnv("server.api_token", "WEALTHCAST_SERVER_API_TOKEN", "API_TOKEN"); err != nil {
		return Config{}, fmt.Errorf("bind server.api_token: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the driver and fills in the DSN when it was left empty.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			c.Database.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name)
		}
	case DriverSQLite:
		if c.Database.DSN == "" {
			c.Database.DSN = "file:wealthcast.db?_foreign_keys=on"
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Server.GRPCAddr == "" {
		return fmt.Errorf("server.grpc_addr must not be empty")
	}
	if c.Server.APIToken == "" {
		return fmt.Errorf("server.api_token must not be empty")
	}
	return nil
}
