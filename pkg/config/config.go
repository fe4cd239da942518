package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Auth          AuthConfig
	AuthRateLimit AuthRateLimitConfig
	Stripe        StripeConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ZORA_APP_ENV" default:"dev"`
	Port         string `envconfig:"ZORA_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"ZORA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ZORA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"ZORA_DB_DSN"`

	Host     string `envconfig:"ZORA_DB_HOST"`
	Port     int    `envconfig:"ZORA_DB_PORT" default:"5432"`
	User     string `envconfig:"ZORA_DB_USER"`
	Password string `envconfig:"ZORA_DB_PASSWORD"`
	Name     string `envconfig:"ZORA_DB_NAME" default:"zora_market"`
	SSLMode  string `envconfig:"ZORA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ZORA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ZORA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ZORA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ZORA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ZORA_REDIS_URL"`
	Address      string        `envconfig:"ZORA_REDIS_ADDR"`
	Password     string        `envconfig:"ZORA_REDIS_PASSWORD"`
	DB           int           `envconfig:"ZORA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ZORA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ZORA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ZORA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ZORA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ZORA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AuthConfig covers the external session-exchange provider plus the
// lifetime of the internal sessions it mints.
type AuthConfig struct {
	ProviderBaseURL string        `envconfig:"ZORA_AUTH_PROVIDER_BASE_URL" default:"https://demobackend.emergentagent.com/auth/v1/env/oauth"`
	ProviderTimeout time.Duration `envconfig:"ZORA_AUTH_PROVIDER_TIMEOUT" default:"10s"`
	SessionTTL      time.Duration `envconfig:"ZORA_AUTH_SESSION_TTL" default:"168h"`
	CookieName      string        `envconfig:"ZORA_AUTH_COOKIE_NAME" default:"session_token"`
}

type AuthRateLimitConfig struct {
	ExchangeWindow   time.Duration `envconfig:"ZORA_AUTH_RATE_LIMIT_EXCHANGE_WINDOW" default:"1m"`
	ExchangeIPLimit  int           `envconfig:"ZORA_AUTH_RATE_LIMIT_EXCHANGE_IP_LIMIT" default:"20"`
	ExchangeKeyLimit int           `envconfig:"ZORA_AUTH_RATE_LIMIT_EXCHANGE_KEY_LIMIT" default:"5"`
}

type StripeConfig struct {
	SecretKey      string `envconfig:"ZORA_STRIPE_SECRET_KEY" default:"sk_test_placeholder"`
	PublishableKey string `envconfig:"ZORA_STRIPE_PUBLISHABLE_KEY" default:"pk_test_placeholder"`
	Env            string `envconfig:"ZORA_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ZORA_AUTO_MIGRATE" default:"false"`
	AutoSeed    bool `envconfig:"ZORA_AUTO_SEED" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	if db.Host == "" {
		missing = append(missing, "ZORA_DB_HOST")
	}
	if db.User == "" {
		missing = append(missing, "ZORA_DB_USER")
	}
	if db.Name == "" {
		missing = append(missing, "ZORA_DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("either ZORA_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
