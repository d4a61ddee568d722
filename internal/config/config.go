package config // package config loads application configuration from environment variables

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Supported values of STORE_DRIVER.
const (
	DriverMySQL = "mysql"
	DriverMongo = "mongo"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Optional features (Redis, cache, rate limit,
// audit) have their own loaders in this package.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	StoreDriver     string        // "mysql" or "mongo"
	DBUser          string        // MySQL username
	DBPass          string        // MySQL password (optional)
	DBHost          string        // MySQL host address
	DBPort          string        // MySQL port number
	DBName          string        // MySQL database name
	MongoURI        string        // MongoDB connection string
	MongoDB         string        // MongoDB database holding the movies collection
	MongoCollection string        // collection name
	LogLevel        string        // zerolog level name
	LogFormat       string        // "json" or "console"
	ShutdownTimeout time.Duration // grace period for in-flight requests
}

// Load reads configuration values from environment variables and returns a
// Config. Every missing required variable is reported in the returned error
// so operators can fix them in one go.
func Load() (Config, error) {
	var missing []string
	must := func(key string) string {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		StoreDriver:     strings.ToLower(envStr("STORE_DRIVER", DriverMySQL)),
		MongoURI:        envStr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         envStr("MONGO_DB", "netflix"),
		MongoCollection: envStr("MONGO_COLLECTION", "movies"),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		LogFormat:       envStr("LOG_FORMAT", "json"),
		ShutdownTimeout: envDur("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	switch cfg.StoreDriver {
	case DriverMySQL:
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	case DriverMongo:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q (want %s or %s)", cfg.StoreDriver, DriverMySQL, DriverMongo)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}
