package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Auth        AuthConfig        `yaml:"auth"`
	UI          UIConfig          `yaml:"ui"`
	Log         LogConfig         `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// PersistenceConfig selects and configures the data-store backend
type PersistenceConfig struct {
	Backend  string         `yaml:"backend"` // "rest" or "postgres"
	REST     RESTConfig     `yaml:"rest"`
	Database DatabaseConfig `yaml:"database"`
}

// RESTConfig contains hosted data-store settings
type RESTConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// AuthConfig contains session token settings
type AuthConfig struct {
	JWTSecret          string `yaml:"jwt_secret"`
	AccessTokenExpiry  int    `yaml:"access_token_expiry_minutes"`
	RefreshTokenExpiry int    `yaml:"refresh_token_expiry_minutes"`
}

// UIConfig contains conventions shared with the presentation layer
type UIConfig struct {
	PageSize               int `yaml:"page_size"`
	NotificationTTLSeconds int `yaml:"notification_ttl_seconds"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Persistence
	if val := os.Getenv("PERSISTENCE_BACKEND"); val != "" {
		c.Persistence.Backend = val
	}
	if val := os.Getenv("DATASTORE_URL"); val != "" {
		c.Persistence.REST.BaseURL = val
	}
	if val := os.Getenv("DATASTORE_API_KEY"); val != "" {
		c.Persistence.REST.APIKey = val
	}
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Persistence.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Persistence.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Persistence.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Persistence.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Persistence.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Persistence.Database.SSLMode = val
	}

	// Auth
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Persistence.Backend {
	case "", "rest":
		c.Persistence.Backend = "rest"
		if c.Persistence.REST.BaseURL == "" {
			return fmt.Errorf("data-store base URL is required for the rest backend")
		}
	case "postgres":
		if c.Persistence.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Persistence.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Persistence.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("unknown persistence backend: %s", c.Persistence.Backend)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.Auth.AccessTokenExpiry == 0 {
		c.Auth.AccessTokenExpiry = 60
	}
	if c.Auth.RefreshTokenExpiry == 0 {
		c.Auth.RefreshTokenExpiry = 7 * 24 * 60
	}

	// UI conventions shared with the front end
	if c.UI.PageSize == 0 {
		c.UI.PageSize = 10
	}
	if c.UI.NotificationTTLSeconds == 0 {
		c.UI.NotificationTTLSeconds = 4
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Persistence.Database.User,
		c.Persistence.Database.Password,
		c.Persistence.Database.Host,
		c.Persistence.Database.Port,
		c.Persistence.Database.Database,
		c.Persistence.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
