package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.  JWTSecret is deliberately allowed to be empty here: the auth
// middleware fails closed with a 500 when it is missing, which keeps a
// misconfigured deployment observable instead of crashing at boot.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	BasePath   string // base path prefix for all routes (e.g. "/plugueplus-api")
	Debug      bool   // when true, error responses include internal detail
	DBHost     string // database host address
	DBPort     string // database port number
	DBName     string // database name
	DBUser     string // database username
	DBPass     string // database password (optional)
	DBCharset  string // database connection charset
	JWTSecret  string // secret used to sign JWTs (may be empty, see above)
	JWTTTLSec  int    // access token time-to-live in seconds
	BcryptCost int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  Database name and user are enforced by must() and missing values
// cause the program to exit with a fatal log message; everything else falls
// back to a sensible default.
func Load() Config {
	return Config{
		Env:        getenv("APP_ENV", "dev"),
		Port:       getenv("APP_PORT", "8080"),
		BasePath:   os.Getenv("APP_BASE_PATH"),
		Debug:      envBool("APP_DEBUG", false),
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBName:     must("DB_DATABASE"),
		DBUser:     must("DB_USERNAME"),
		DBPass:     os.Getenv("DB_PASSWORD"), // empty allowed
		DBCharset:  getenv("DB_CHARSET", "utf8mb4"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTTTLSec:  envInt("JWT_TTL", 86400),
		BcryptCost: envInt("BCRYPT_COST", 10),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
