package config

import (
	"errors"  // Error construction
	"fmt"     // Error wrapping
	"strings" // Case-insensitive env comparison
	"time"    // Durations for TTLs

	"github.com/caarlos0/env/v11" // Struct-tag environment parsing
	"github.com/joho/godotenv"    // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort  string `env:"APP_PORT" envDefault:"8080"`       // Application port
	AppEnv   string `env:"APP_ENV" envDefault:"development"` // development or production
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`      // logrus level name

	DBDriver   string `env:"DB_DRIVER" envDefault:"mysql"`          // mysql or sqlite
	DBUser     string `env:"DB_USER"`                               // Database user
	DBPassword string `env:"DB_PASSWORD"`                           // Database password
	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"`        // Database host
	DBPort     string `env:"DB_PORT" envDefault:"3306"`             // Database port
	DBName     string `env:"DB_NAME" envDefault:"music_library"`    // Database name
	DBPath     string `env:"DB_PATH" envDefault:"music_library.db"` // SQLite file when DB_DRIVER=sqlite

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"` // JWT secret key
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`     // Token lifetime

	RedisAddr string        `env:"REDIS_ADDR"`                 // Redis server address, empty disables caching
	RedisPass string        `env:"REDIS_PASS"`                 // Redis password
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`    // Redis database number
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"60s"` // Cached list lifetime

	CORSOrigins    []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envDefault:"127.0.0.1" envSeparator:","`
}

// LoadConfig loads configuration from a .env file (if present) and the environment
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}

// IsProd reports whether the app runs in production mode
func (c *Config) IsProd() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// IsDevelopment reports whether internal error details may be returned to callers
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// DSN builds the MySQL Data Source Name. clientFoundRows makes UPDATE report
// matched rows, which the repositories rely on for NotFound detection.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName +
		"?parseTime=true&clientFoundRows=true&charset=utf8mb4"
}
