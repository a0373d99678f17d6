package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Env                string
	HTTPAddr           string
	DBType             string
	MongoURL           string
	PostgresURL        string
	MigrationsDir      string
	JWTSecret          string
	JWTExpiry          time.Duration
	AllowedOrigins     []string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
	PasswordMinLen     int
	BcryptCost         int
	AdminEmail         string
	AdminPassword      string
}

const (
	DBTypeMongo    = "mongo"
	DBTypePostgres = "postgres"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("ENV", "dev")

	passwordMin := getIntEnv("PASSWORD_MIN_LEN", 4)
	if env == "prod" && passwordMin < 8 {
		passwordMin = 8
	}

	cfg := &Config{
		Env:                env,
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DBType:             getEnv("DB_TYPE", DBTypeMongo),
		MongoURL:           getEnv("MONGO_URL", "mongodb://localhost:27017"),
		PostgresURL:        getEnv("POSTGRES_URL", ""),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "migrations"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpiry:          getDurationEnv("JWT_EXPIRES_IN", 720*time.Hour),
		AllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
		RateLimitPerMinute: getIntEnv("RATE_LIMIT_PER_MIN", 30),
		RequestTimeout:     getDurationEnv("REQUEST_TIMEOUT", 5*time.Second),
		PasswordMinLen:     passwordMin,
		BcryptCost:         getIntEnv("BCRYPT_COST", bcrypt.DefaultCost),
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	switch cfg.DBType {
	case DBTypeMongo:
	case DBTypePostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("POSTGRES_URL is required when DB_TYPE=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
