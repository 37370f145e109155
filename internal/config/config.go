package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service. It is loaded once at
// startup and treated as immutable for the process lifetime.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	SMTP   SMTPConfig   `mapstructure:"smtp"`
	Auth   AuthConfig   `mapstructure:"auth"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SMTPConfig holds the upstream mail relay configuration
type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// UseTLS enables STARTTLS on a plain connection (port 587).
	// When false the connection uses implicit TLS (port 465).
	UseTLS    bool   `mapstructure:"use_tls"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_name"`
}

// Configured reports whether the relay has everything it needs to send.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Password != "" && c.FromEmail != ""
}

// AuthConfig holds API authentication configuration
type AuthConfig struct {
	// APIKey is the shared secret callers must present as a bearer token
	APIKey string `mapstructure:"api_key"`
	// RequireAuth disables the bearer check when false (local development)
	RequireAuth bool `mapstructure:"require_auth"`
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/email-service")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables. No prefix: the deployment surface uses
	// bare names (SMTP_HOST, SMTP_USER, ...).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Aliases kept from the original deployment environment
	v.BindEnv("auth.api_key", "AUTH_API_KEY", "EMAIL_SERVICE_API_KEY")
	v.BindEnv("auth.require_auth", "AUTH_REQUIRE_AUTH", "REQUIRE_AUTH")
	v.BindEnv("server.port", "SERVER_PORT", "PORT")

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	// SMTP relay defaults (Gmail, STARTTLS)
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.use_tls", true)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from_email", "")
	v.SetDefault("smtp.from_name", "StockFolio")

	// Auth defaults
	v.SetDefault("auth.api_key", "")
	v.SetDefault("auth.require_auth", true)

	// CORS defaults
	v.SetDefault("cors.allowed_origins", []string{"*"})

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
