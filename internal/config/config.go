package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dursunaydin1/refik-app/internal/calendar"
	"github.com/dursunaydin1/refik-app/internal/validation"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBSSLMode   string
	SQLitePath  string

	JWTSecret      string
	AllowedOrigins string
	PublicBaseURL  string

	AdminPhone             string
	AdminBootstrapPassword string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubject    string

	CronSecret       string
	ReminderInterval time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool

	ContentAPIURL  string
	ContentEdition string

	CampaignStart time.Time
	CampaignDays  int
}

// Load reads the environment, after merging a .env file when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:                   getEnv("PORT", "8080"),
		DBDriver:               strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 getEnv("DB_NAME", "refik"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBSSLMode:              getEnv("DB_SSLMODE", "disable"),
		SQLitePath:             getEnv("SQLITE_PATH", "refik.db"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		AllowedOrigins:         os.Getenv("ALLOWED_ORIGINS"),
		PublicBaseURL:          strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		AdminPhone:             validation.NormalizePhone(unquote(os.Getenv("ADMIN_PHONE"))),
		AdminBootstrapPassword: unquote(os.Getenv("ADMIN_BOOTSTRAP_PASSWORD")),
		VAPIDPublicKey:         os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey:        os.Getenv("VAPID_PRIVATE_KEY"),
		VAPIDSubject:           getEnv("VAPID_SUBJECT", "mailto:admin@refikapp.com"),
		CronSecret:             os.Getenv("CRON_SECRET"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		S3Endpoint:             strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3Region:               strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Bucket:               strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3AccessKey:            strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey:            strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		ContentAPIURL:          strings.TrimRight(getEnv("CONTENT_API_URL", "https://api.alquran.cloud/v1"), "/"),
		ContentEdition:         getEnv("CONTENT_EDITION", "tr.yazir"),
		CampaignStart:          calendar.DefaultStart,
		CampaignDays:           calendar.DefaultDays,
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("invalid DB_DRIVER %q", cfg.DBDriver)
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}
	if v := strings.TrimSpace(os.Getenv("S3_USE_SSL")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid S3_USE_SSL: %w", err)
		}
		cfg.S3UseSSL = b
	}
	if v := os.Getenv("REMINDER_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_INTERVAL: %w", err)
		}
		cfg.ReminderInterval = d
	}
	if v := os.Getenv("CAMPAIGN_START"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid CAMPAIGN_START: %w", err)
		}
		cfg.CampaignStart = ts
	}
	if v := os.Getenv("CAMPAIGN_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > calendar.TotalUnits {
			return nil, fmt.Errorf("invalid CAMPAIGN_DAYS %q", v)
		}
		cfg.CampaignDays = n
	}

	return cfg, nil
}

func (c *Config) Calendar() calendar.Calendar {
	return calendar.New(c.CampaignStart, c.CampaignDays)
}

// PushConfigured reports whether VAPID credentials are present.
func (c *Config) PushConfigured() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

// ArchiveConfigured reports whether the S3 content archive can be used.
func (c *Config) ArchiveConfigured() bool {
	return c.S3Endpoint != "" && c.S3Bucket != ""
}

// PostgresDSN prefers DATABASE_URL and falls back to the discrete DB_* values.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func unquote(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"'`))
}
