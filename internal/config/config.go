package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-sales-engine/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// MarketplaceConfig holds the sales policy of the engine
type MarketplaceConfig struct {
	// CommissionPercent is a decimal string, e.g. "10" or "2.5"
	CommissionPercent string `mapstructure:"commission_percent"`
	// Platform is the party receiving commission transactions
	Platform string `mapstructure:"platform"`
	// AmountScale is the number of decimal places commissions are rounded to
	AmountScale int32 `mapstructure:"amount_scale"`
	// AllowReset enables the administrative datastore reset. Keep disabled in production.
	AllowReset     bool `mapstructure:"allow_reset"`
	StatsCacheSize int  `mapstructure:"stats_cache_size"`
}

// Commission parses the configured commission percentage
func (c *MarketplaceConfig) Commission() (decimal.Decimal, error) {
	pct, err := decimal.NewFromString(strings.TrimSpace(c.CommissionPercent))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid commission_percent %q: %w", c.CommissionPercent, err)
	}
	return pct, nil
}

// Validate checks the marketplace policy
func (c *MarketplaceConfig) Validate() error {
	pct, err := c.Commission()
	if err != nil {
		return err
	}
	if !domain.PercentFits(pct) {
		return fmt.Errorf("commission_percent must have at most 3 integer digits and %d decimal places, got %q", domain.PercentMaxScale, c.CommissionPercent)
	}
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("commission_percent must be between 0 and 100, got %s", pct.String())
	}
	if strings.TrimSpace(c.Platform) == "" {
		return errors.New("platform is required")
	}
	if c.AmountScale < 0 || c.AmountScale > domain.AmountMaxScale {
		return fmt.Errorf("amount_scale must be between 0 and %d, got %d", domain.AmountMaxScale, c.AmountScale)
	}
	return nil
}

// EventsConfig holds contract event dispatching configuration
type EventsConfig struct {
	SigningSecret   string        `mapstructure:"signing_secret"`
	WorkerPoolSize  int           `mapstructure:"worker_pool_size"`
	QueueSize       int           `mapstructure:"queue_size"`
	MaxRetryElapsed time.Duration `mapstructure:"max_retry_elapsed"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Server       ServerConfig      `mapstructure:"server"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Auth         AuthConfig        `mapstructure:"auth"`
	NATS         NATSConfig        `mapstructure:"nats"`
	Marketplace  MarketplaceConfig `mapstructure:"marketplace"`
	Events       EventsConfig      `mapstructure:"events"`
	RegistryPath string            `mapstructure:"registry_path"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "SALES_EVENTS")
	v.SetDefault("nats.subject_prefix", "sales")
	v.SetDefault("nats.connection_name", "ff-sales-api")
	v.SetDefault("marketplace.commission_percent", "10")
	v.SetDefault("marketplace.amount_scale", 8)
	v.SetDefault("marketplace.allow_reset", false)
	v.SetDefault("marketplace.stats_cache_size", 1024)
	v.SetDefault("events.worker_pool_size", 4)
	v.SetDefault("events.queue_size", 256)
	v.SetDefault("events.max_retry_elapsed", "1m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Marketplace.Validate(); err != nil {
		return nil, fmt.Errorf("invalid marketplace config: %w", err)
	}

	return &config, nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_SALES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"registry_path",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.auto_migrate",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Marketplace
		"marketplace.commission_percent",
		"marketplace.platform",
		"marketplace.amount_scale",
		"marketplace.allow_reset",
		"marketplace.stats_cache_size",
		// Events
		"events.signing_secret",
		"events.worker_pool_size",
		"events.queue_size",
		"events.max_retry_elapsed",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
