package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver    string
	DatabaseURL string

	JWTSecret string
	JWTExpiry time.Duration

	FirebaseCredentials string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StatsCacheTTL time.Duration

	LogLevel  string
	LogFormat string

	NotificationWorkers   int
	NotificationQueueSize int
	NotificationTimeout   time.Duration

	TokenPruneSchedule string
	TokenMaxAge        time.Duration

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int

	CORSAllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:    getEnv("PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "release"),

		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=findit port=5432 sslmode=disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: getDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),
		StatsCacheTTL: getDuration("STATS_CACHE_TTL", time.Minute),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		NotificationWorkers:   getInt("NOTIFICATION_WORKERS", 3),
		NotificationQueueSize: getInt("NOTIFICATION_QUEUE_SIZE", 500),
		NotificationTimeout:   getDuration("NOTIFICATION_TIMEOUT", 30*time.Second),

		TokenPruneSchedule: getEnv("FCM_TOKEN_PRUNE_SCHEDULE", "0 3 * * *"),
		TokenMaxAge:        getDuration("FCM_TOKEN_MAX_AGE", 60*24*time.Hour),

		AuthRateLimitRPS:   getFloat("AUTH_RATE_LIMIT_RPS", 5),
		AuthRateLimitBurst: getInt("AUTH_RATE_LIMIT_BURST", 10),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not defined in environment variables")
	}
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
		return errors.New("DB_DRIVER must be postgres or sqlite")
	}
	return nil
}

// CloudinaryEnabled reports whether all Cloudinary credentials are present.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
