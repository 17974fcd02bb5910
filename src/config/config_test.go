package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv makes sure values from the developer's shell don't leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_URI", "ALLOWED_ORIGINS", "STATIC_DIR", "ACTIVITIES_SOURCE", "ACTIVITIES_FILE",
		"MONGO_URI", "MONGO_DB", "MONGO_COLLECTION", "REDIS_URI", "WORKER_CONCURRENCY",
		"LOG_LEVEL", "LOG_FORMAT", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.AppURI)
	assert.Equal(t, "*", cfg.AllowedOrigins)
	assert.Equal(t, "src/static", cfg.StaticDir)
	assert.Equal(t, SourceFile, cfg.ActivitiesSource)
	assert.Equal(t, "activities.json", cfg.ActivitiesFile)
	assert.Equal(t, "MergingtonDB", cfg.MongoDB)
	assert.Equal(t, "activities", cfg.MongoCollection)
	assert.Equal(t, 5, cfg.WorkerConcurrency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.NotificationsEnabled())
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_URI", "9090")
	t.Setenv("ACTIVITIES_SOURCE", " Mongo ")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("REDIS_URI", "localhost:6379")
	t.Setenv("WORKER_CONCURRENCY", "2")
	t.Setenv("SMTP_HOST", "smtp.mergington.edu")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_USER", "noreply")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("SMTP_FROM", "noreply@mergington.edu")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppURI)
	assert.Equal(t, SourceMongo, cfg.ActivitiesSource)
	assert.Equal(t, 2, cfg.WorkerConcurrency)
	assert.True(t, cfg.NotificationsEnabled())
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACTIVITIES_FILE=/data/activities.json\nLOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("ACTIVITIES_FILE")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/activities.json", cfg.ActivitiesFile)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown source", map[string]string{"ACTIVITIES_SOURCE": "postgres"}},
		{"mongo without uri", map[string]string{"ACTIVITIES_SOURCE": "mongo"}},
		{"zero concurrency", map[string]string{"WORKER_CONCURRENCY": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(missingEnvFile(t))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
