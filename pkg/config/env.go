package config

// EnvPrefix is passed to envconfig; individual fields carry full names so the
// prefix only matters for variables without explicit tags.
const EnvPrefix = "MODALUXE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv    = "MODALUXE_APP_ENV"
	EnvPort      = "MODALUXE_APP_PORT"
	EnvDBDSN     = "MODALUXE_DB_DSN"
	EnvDBHost    = "MODALUXE_DB_HOST"
	EnvDBUser    = "MODALUXE_DB_USER"
	EnvDBName    = "MODALUXE_DB_NAME"
	EnvRedisURL  = "MODALUXE_REDIS_URL"
	EnvJWTSecret = "MODALUXE_JWT_SECRET"
	EnvStripeKey = "MODALUXE_STRIPE_API_KEY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
