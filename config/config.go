// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"

	"github.com/wayfarerhq/wayfarer-backend/logger"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	minJWTSecretLength = 32
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	JwtSecretKey   string      `mapstructure:"JWT_SECRET_KEY"`
	Version        string      `mapstructure:"VERSION"`
}

// DatabaseConfig holds PostgreSQL connection details.
type DatabaseConfig struct {
	Host         string `mapstructure:"HOST"`
	Port         int    `mapstructure:"PORT"`
	User         string `mapstructure:"USER"`
	Password     string `mapstructure:"PASSWORD"`
	Name         string `mapstructure:"NAME"`
	SSLMode      string `mapstructure:"SSL_MODE"`
	MaxOpenConns int    `mapstructure:"MAX_OPEN_CONNS"`
}

// URL returns a postgres:// connection URL suitable for golang-migrate and
// pgxpool.ParseConfig.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details for the rate limiter.
type RedisConfig struct {
	Address  string `mapstructure:"ADDRESS"`
	Password string `mapstructure:"PASSWORD"`
	DB       int    `mapstructure:"DB"`
}

// RateLimitConfig holds configuration for write-endpoint rate limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"REQUESTS_PER_MINUTE"`
	WindowSeconds     int `mapstructure:"WINDOW_SECONDS"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server    ServerConfig    `mapstructure:"SERVER"`
	Database  DatabaseConfig  `mapstructure:"DATABASE"`
	Redis     RedisConfig     `mapstructure:"REDIS"`
	RateLimit RateLimitConfig `mapstructure:"RATE_LIMIT"`
}

// IsProduction returns true when running in the production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// applies defaults, unmarshals and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "wayfarer_dev")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_OPEN_CONNS", 10)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("RATE_LIMIT.REQUESTS_PER_MINUTE", 120)
	v.SetDefault("RATE_LIMIT.WINDOW_SECONDS", 60)

	if err := bindEnvVars(v, [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.JWT_SECRET_KEY", "JWT_SECRET_KEY"},
		{"SERVER.VERSION", "VERSION"},
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		{"DATABASE.MAX_OPEN_CONNS", "DB_MAX_OPEN_CONNS"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"RATE_LIMIT.REQUESTS_PER_MINUTE", "RATE_LIMIT_REQUESTS_PER_MINUTE"},
		{"RATE_LIMIT.WINDOW_SECONDS", "RATE_LIMIT_WINDOW_SECONDS"},
	}); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"db_host", cfg.Database.Host,
	)
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.JwtSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.IsProduction() && len(c.Server.JwtSecretKey) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET_KEY must be at least %d characters in production", minJWTSecretLength)
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}
	return nil
}
