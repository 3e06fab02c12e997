package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Stripe        StripeConfig
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
	Env          string `envconfig:"MODALUXE_APP_ENV" required:"true"`
	Port         string `envconfig:"MODALUXE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MODALUXE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MODALUXE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MODALUXE_DB_DSN"`
	Driver string `envconfig:"MODALUXE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MODALUXE_DB_HOST"`
	LegacyPort     int    `envconfig:"MODALUXE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MODALUXE_DB_USER"`
	LegacyPassword string `envconfig:"MODALUXE_DB_PASSWORD"`
	LegacyName     string `envconfig:"MODALUXE_DB_NAME"`
	LegacySSLMode  string `envconfig:"MODALUXE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MODALUXE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MODALUXE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MODALUXE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MODALUXE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the sqlite dialector should be used.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

// RedisConfig is optional: when URL and Address are both empty, the auth
// rate limiter is disabled and no Redis connection is attempted.
type RedisConfig struct {
	URL          string        `envconfig:"MODALUXE_REDIS_URL"`
	Address      string        `envconfig:"MODALUXE_REDIS_ADDR"`
	Password     string        `envconfig:"MODALUXE_REDIS_PASSWORD"`
	DB           int           `envconfig:"MODALUXE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MODALUXE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MODALUXE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MODALUXE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MODALUXE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MODALUXE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis connection is configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"MODALUXE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MODALUXE_JWT_ISSUER" default:"modaluxe"`
	ExpirationMinutes int    `envconfig:"MODALUXE_JWT_EXPIRATION_MINUTES" default:"60"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MODALUXE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MODALUXE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MODALUXE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MODALUXE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MODALUXE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"MODALUXE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"MODALUXE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"MODALUXE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"MODALUXE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"MODALUXE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"MODALUXE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MODALUXE_AUTO_MIGRATE" default:"false"`
}

type StripeConfig struct {
	APIKey string `envconfig:"MODALUXE_STRIPE_API_KEY"`
	Env    string `envconfig:"MODALUXE_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required for the sqlite driver", EnvDBDSN)
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
