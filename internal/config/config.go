package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Cache    CacheConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters. TokenSecret and PasswordSalt
// are process-wide and immutable for the process lifetime; rotating either
// invalidates every outstanding token and every stored password hash.
type AuthConfig struct {
	TokenSecret         string
	PasswordSalt        string
	ClientTokenTTLHours int
}

// CacheConfig tunes the dashboard read-through cache.
type CacheConfig struct {
	DashboardTTLSeconds int
}

// Load reads configuration from environment variables. Server and store
// settings fall back to defaults; the auth section is mandatory and an unset
// secret, salt, or client token lifetime aborts startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	authCfg, err := loadAuth()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "sales-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: *authCfg,
		Cache: CacheConfig{
			DashboardTTLSeconds: getEnvAsInt("CACHE_DASHBOARD_TTL_SECONDS", 300),
		},
	}

	return cfg, nil
}

func loadAuth() (*AuthConfig, error) {
	secret := os.Getenv("AUTH_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("AUTH_TOKEN_SECRET is required")
	}
	salt := os.Getenv("AUTH_PASSWORD_SALT")
	if salt == "" {
		return nil, fmt.Errorf("AUTH_PASSWORD_SALT is required")
	}

	// No default on purpose: multiplying an unset lifetime into an expiry
	// silently produces garbage tokens, so refuse to start instead.
	rawTTL := os.Getenv("AUTH_CLIENT_TOKEN_TTL_HOURS")
	if rawTTL == "" {
		return nil, fmt.Errorf("AUTH_CLIENT_TOKEN_TTL_HOURS is required")
	}
	ttlHours, err := strconv.Atoi(rawTTL)
	if err != nil || ttlHours <= 0 {
		return nil, fmt.Errorf("AUTH_CLIENT_TOKEN_TTL_HOURS must be a positive integer, got %q", rawTTL)
	}

	return &AuthConfig{
		TokenSecret:         secret,
		PasswordSalt:        salt,
		ClientTokenTTLHours: ttlHours,
	}, nil
}

// ClientTokenTTL returns the configured stateless token lifetime.
func (a AuthConfig) ClientTokenTTL() time.Duration {
	return time.Duration(a.ClientTokenTTLHours) * time.Hour
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// DashboardTTL returns the dashboard cache entry lifetime.
func (c CacheConfig) DashboardTTL() time.Duration {
	if c.DashboardTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.DashboardTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
