package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	Environment    string
	ServiceName    string
	Version        string
	LogLevel       string
	LogFormat      string
	LogAddSource   bool
	LogDir         string
	TrustedProxies []string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	TokenTTL  time.Duration

	// RedisAddr enables the Redis cache. Empty falls back to the in-process LRU.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	CacheSize     int

	KafkaBrokers       []string
	KafkaTopic         string
	DiscordWebhookURL  string
	DiscordMinPriority string

	EventMaxRetries int
	EventRetryDelay time.Duration
	DeadLetterPath  string

	WorkerCount     int
	WorkerQueueSize int

	// Zero disables the corresponding background job.
	OverdueSweepInterval    time.Duration
	ExpirySweepInterval     time.Duration
	LedgerAuditInterval     time.Duration
	EventLogCleanupInterval time.Duration
	EventLogRetentionDays   int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		Version:        getEnv("VERSION", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogAddSource:   getEnvAsBool("LOG_ADD_SOURCE", false),
		LogDir:         getEnv("LOG_DIR", "logs"),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getEnvAsDuration("TOKEN_TTL", 24*time.Hour),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", 30*time.Second),
		CacheSize:     getEnvAsInt("CACHE_SIZE", 1024),

		KafkaBrokers:       getEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:         getEnv("KAFKA_TOPIC", DefaultKafkaTopic),
		DiscordWebhookURL:  getEnv("DISCORD_WEBHOOK_URL", ""),
		DiscordMinPriority: strings.ToUpper(getEnv("DISCORD_MIN_PRIORITY", "HIGH")),

		EventMaxRetries: getEnvAsInt("EVENT_MAX_RETRIES", 5),
		EventRetryDelay: getEnvAsDuration("EVENT_RETRY_DELAY", 2*time.Second),
		DeadLetterPath:  getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", 2),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", 16),

		OverdueSweepInterval:    getEnvAsDuration("OVERDUE_SWEEP_INTERVAL", time.Hour),
		ExpirySweepInterval:     getEnvAsDuration("EXPIRY_SWEEP_INTERVAL", 6*time.Hour),
		LedgerAuditInterval:     getEnvAsDuration("LEDGER_AUDIT_INTERVAL", 24*time.Hour),
		EventLogCleanupInterval: getEnvAsDuration("EVENT_LOG_CLEANUP_INTERVAL", 24*time.Hour),
		EventLogRetentionDays:   getEnvAsInt("EVENT_LOG_RETENTION_DAYS", 90),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}

	return cfg, nil
}

// Validate checks values that parse but cannot be used.
func (c *Config) Validate() error {
	var problems []string
	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT %d out of range", c.Port))
	}
	if len(c.JWTSecret) < MinJWTSecretLength {
		problems = append(problems, fmt.Sprintf("JWT_SECRET must be at least %d characters", MinJWTSecretLength))
	}
	if c.DBMaxConns < 1 {
		problems = append(problems, "DB_MAX_CONNS must be positive")
	}
	if c.WorkerCount < 1 {
		problems = append(problems, "WORKER_COUNT must be positive")
	}
	if c.WorkerQueueSize < 1 {
		problems = append(problems, "WORKER_QUEUE_SIZE must be positive")
	}
	if c.EventLogRetentionDays < 1 {
		problems = append(problems, "EVENT_LOG_RETENTION_DAYS must be positive")
	}
	switch c.DiscordMinPriority {
	case "LOW", "MEDIUM", "HIGH":
	default:
		problems = append(problems, fmt.Sprintf("DISCORD_MIN_PRIORITY %q is not LOW, MEDIUM or HIGH", c.DiscordMinPriority))
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		problems = append(problems, "KAFKA_TOPIC must be set when KAFKA_BROKERS is")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
