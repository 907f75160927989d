package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PHONE", `"+90 532 000 00 01"`)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "5320000001", cfg.AdminPhone)
	assert.Equal(t, "http://localhost:3000", cfg.PublicBaseURL)
	assert.Equal(t, 29, cfg.Calendar().Days)
	assert.Equal(t, time.Duration(0), cfg.ReminderInterval)
	assert.False(t, cfg.PushConfigured())
	assert.False(t, cfg.ArchiveConfigured())
}

func TestFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Unknown driver", "DB_DRIVER", "mysql"},
		{"Bad redis db", "REDIS_DB", "zero"},
		{"Bad interval", "REMINDER_INTERVAL", "daily"},
		{"Bad start", "CAMPAIGN_START", "2026-02-19"},
		{"Too many days", "CAMPAIGN_DAYS", "31"},
		{"Bad S3 SSL flag", "S3_USE_SSL", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret")
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "refik", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=refik port=5432 sslmode=disable", cfg.PostgresDSN())

	cfg.DatabaseURL = "postgres://u:p@db/refik"
	assert.Equal(t, "postgres://u:p@db/refik", cfg.PostgresDSN())
}

func TestCampaignOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CAMPAIGN_START", "2027-02-08T00:00:00+03:00")
	t.Setenv("CAMPAIGN_DAYS", "30")
	t.Setenv("REMINDER_INTERVAL", "6h")

	cfg, err := FromEnv()
	require.NoError(t, err)

	cal := cfg.Calendar()
	assert.Equal(t, 2027, cal.Start.Year())
	assert.Equal(t, 30, cal.Days)
	assert.Equal(t, 6*time.Hour, cfg.ReminderInterval)
}

func TestFromEnvArchive(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("S3_ENDPOINT", "localhost:9000")
	t.Setenv("S3_BUCKET", "refik")
	t.Setenv("S3_USE_SSL", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.ArchiveConfigured())
	assert.True(t, cfg.S3UseSSL)
}
