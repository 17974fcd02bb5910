package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SourceFile  = "file"
	SourceMongo = "mongo"
)

// Config ค่าตั้งค่าทั้งหมดของแอป อ่านจาก .env และ environment
type Config struct {
	AppURI         string
	AllowedOrigins string
	StaticDir      string

	ActivitiesSource string
	ActivitiesFile   string

	MongoURI        string
	MongoDB         string
	MongoCollection string

	RedisURI          string
	WorkerConcurrency int

	LogLevel  string
	LogFormat string

	SMTP SMTPConfig
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Enabled is true once every SMTP setting is present.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Port != 0 && c.User != "" && c.Pass != "" && c.From != ""
}

// NotificationsEnabled reports whether roster changes should be queued.
func (c *Config) NotificationsEnabled() bool {
	return c.RedisURI != ""
}

// Load reads envFiles (default ".env") then the environment.
// A missing .env is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		AppURI:            v.GetString("APP_URI"),
		AllowedOrigins:    v.GetString("ALLOWED_ORIGINS"),
		StaticDir:         v.GetString("STATIC_DIR"),
		ActivitiesSource:  strings.ToLower(strings.TrimSpace(v.GetString("ACTIVITIES_SOURCE"))),
		ActivitiesFile:    v.GetString("ACTIVITIES_FILE"),
		MongoURI:          v.GetString("MONGO_URI"),
		MongoDB:           v.GetString("MONGO_DB"),
		MongoCollection:   v.GetString("MONGO_COLLECTION"),
		RedisURI:          v.GetString("REDIS_URI"),
		WorkerConcurrency: v.GetInt("WORKER_CONCURRENCY"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		SMTP: SMTPConfig{
			Host: v.GetString("SMTP_HOST"),
			Port: v.GetInt("SMTP_PORT"),
			User: v.GetString("SMTP_USER"),
			Pass: v.GetString("SMTP_PASS"),
			From: v.GetString("SMTP_FROM"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_URI", "8000")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("STATIC_DIR", "src/static")
	v.SetDefault("ACTIVITIES_SOURCE", SourceFile)
	v.SetDefault("ACTIVITIES_FILE", "activities.json")
	v.SetDefault("MONGO_DB", "MergingtonDB")
	v.SetDefault("MONGO_COLLECTION", "activities")
	v.SetDefault("REDIS_URI", "")
	v.SetDefault("WORKER_CONCURRENCY", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

func (c *Config) validate() error {
	switch c.ActivitiesSource {
	case SourceFile:
	case SourceMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when ACTIVITIES_SOURCE=%s", SourceMongo)
		}
	default:
		return fmt.Errorf("unknown ACTIVITIES_SOURCE %q", c.ActivitiesSource)
	}
	if c.WorkerConcurrency < 1 {
		return fmt.Errorf("WORKER_CONCURRENCY must be positive, got %d", c.WorkerConcurrency)
	}
	return nil
}
