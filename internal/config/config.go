package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Config struct {
	AppEnv  string
	Port    string
	Timeout time.Duration

	Database DatabaseConfig
	Redis    string
	Kafka    string

	CORSAllowedOrigins []string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	SMTP SMTPConfig

	// Akun SUPER_ADMIN pertama; dilewati bila email kosong.
	BootstrapAdminEmail    string
	BootstrapAdminPassword string

	// reject | allow
	NegativeBalancePolicy string

	OutboxPollInterval   time.Duration
	AccrualCheckInterval time.Duration
}

// Load membaca .env (jika ada) lalu environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:  getEnv("APP_ENV", "development"),
		Port:    getEnv("PORT", "3000"),
		Timeout: getEnvAsDuration("HTTP_TIMEOUT", 10*time.Second),
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "pengelola_cuti"),
			Port:       getEnv("DB_PORT", "5432"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: getEnvAsInt("DB_MAX_RETRIES", 5),
		},
		Redis:              getEnv("REDIS_ADDR", "localhost:6379"),
		Kafka:              getEnv("KAFKA_BROKER", ""),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTokenTTL:     getEnvAsDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:    getEnvAsDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "no-reply@pengelola-cuti.local"),
		},
		BootstrapAdminEmail:    getEnv("BOOTSTRAP_ADMIN_EMAIL", ""),
		BootstrapAdminPassword: getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
		NegativeBalancePolicy:  strings.ToLower(getEnv("LEAVE_NEGATIVE_BALANCE_POLICY", "reject")),
		OutboxPollInterval:     getEnvAsDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		AccrualCheckInterval:   getEnvAsDuration("ACCRUAL_CHECK_INTERVAL", time.Hour),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.BootstrapAdminEmail != "" && len(c.BootstrapAdminPassword) < 8 {
		return fmt.Errorf("BOOTSTRAP_ADMIN_PASSWORD must be at least 8 characters")
	}
	switch c.NegativeBalancePolicy {
	case "reject", "allow":
	default:
		return fmt.Errorf("invalid LEAVE_NEGATIVE_BALANCE_POLICY: %s", c.NegativeBalancePolicy)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valStr := getEnv(name, "")
	if val, err := time.ParseDuration(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsList(name string, defaultVal []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
