package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything cmd/server needs to wire the process.
type Config struct {
	Server   Server
	Postgres Postgres
	Redis    Redis
	Kafka    Kafka

	// StoreBackend selects the person store adapter: "memory", "postgres",
	// or "redis". Memory is the default so the service runs with zero
	// external dependencies.
	StoreBackend string
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Postgres captures connection settings for the PostgreSQL store.
type Postgres struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// Redis captures connection settings for the Redis store.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka captures audit publisher settings. An empty broker list disables
// Kafka publishing; audit events then stay on the in-process trail only.
type Kafka struct {
	Brokers    []string
	AuditTopic string
}

// FromEnv builds the full config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:            getEnv("PEOPLEDIR_ADDR", ":8080"),
			RequestTimeout:  getDuration("PEOPLEDIR_REQUEST_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDuration("PEOPLEDIR_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: Postgres{
			DSN:          os.Getenv("PEOPLEDIR_POSTGRES_DSN"),
			MaxOpenConns: getInt("PEOPLEDIR_POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getInt("PEOPLEDIR_POSTGRES_MAX_IDLE_CONNS", 5),
		},
		Redis: Redis{
			URL:          os.Getenv("PEOPLEDIR_REDIS_URL"),
			PoolSize:     getInt("PEOPLEDIR_REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("PEOPLEDIR_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("PEOPLEDIR_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("PEOPLEDIR_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("PEOPLEDIR_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: Kafka{
			Brokers:    splitNonEmpty(os.Getenv("PEOPLEDIR_KAFKA_BROKERS")),
			AuditTopic: getEnv("PEOPLEDIR_KAFKA_AUDIT_TOPIC", "peopledir.audit"),
		},
		StoreBackend: getEnv("PEOPLEDIR_STORE", "memory"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitNonEmpty(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
