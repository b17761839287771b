package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the server needs, resolved from the environment
// with sensible development defaults.
type Config struct {
	AppEnv   string
	HTTPAddr string

	// DBDriver selects the catalog store backend: "sqlite" or "postgres".
	DBDriver   string
	SQLitePath string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresName     string

	// SessionBackend selects the session store: "memory" or "redis".
	SessionBackend string
	RedisAddr      string
	SessionTTL     time.Duration

	StaticDir string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "instance/storefront.db"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresName:     getEnv("POSTGRES_NAME", "storefront"),

		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL", 86400)) * time.Second,

		StaticDir: getEnv("STATIC_DIR", "static"),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
