// Package config loads runtime configuration from environment variables.
// Every value has a default so the service boots with an empty
// environment; a .env file loaded in main can override any of them.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application-level settings.  Hold ttl bounds are
// enforced by the API layer when a client supplies its own ttl; the
// default applies when it does not.
type Config struct {
	Env              string        // application environment (dev, test, prod)
	Port             string        // HTTP port to listen on
	HoldTTL          time.Duration // default hold lifetime
	HoldTTLMin       time.Duration // smallest ttl a client may request
	HoldTTLMax       time.Duration // largest ttl a client may request
	SweepInterval    time.Duration // how often the expiry sweep runs
	ExpiredRetention time.Duration // how long expired hold records stay visible

	// Optional MySQL catalog source.  When DBHost is empty the built-in
	// seeded catalog is used instead.
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	DBMaxOpenConns    int           // connection pool ceiling
	DBMaxIdleConns    int           // idle connections kept around
	DBConnMaxLifetime time.Duration // recycle connections after this long
}

// Load reads the configuration from the environment, applying defaults
// for anything unset.
func Load() Config {
	return Config{
		Env:              getenv("APP_ENV", "dev"),
		Port:             getenv("APP_PORT", "8080"),
		HoldTTL:          envDur("HOLD_TTL", 5*time.Minute),
		HoldTTLMin:       envDur("HOLD_TTL_MIN", time.Second),
		HoldTTLMax:       envDur("HOLD_TTL_MAX", 15*time.Minute),
		SweepInterval:    envDur("SWEEP_INTERVAL", 10*time.Second),
		ExpiredRetention: envDur("EXPIRED_RETENTION", 5*time.Minute),
		DBUser:           os.Getenv("DB_USER"),
		DBPass:           os.Getenv("DB_PASS"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getenv("DB_PORT", "3306"),
		DBName:           os.Getenv("DB_NAME"),

		DBMaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime: envDur("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}

// getenv returns the value of key or def when unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envDur parses key as a time.Duration ("30s", "5m"), falling back to def
// on absence or parse failure.
func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// envInt parses key as an integer with a default.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// envBool parses key as a boolean with a default.
func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}
