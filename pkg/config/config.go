package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log      LogConfig
	Session  SessionConfig
	Matching MatchingConfig
	Reports  ReportsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SessionConfig controls login behaviour and the admin gate.
type SessionConfig struct {
	AdminEmail     string
	LoginDelay     time.Duration
	DemoLoginEmail string
}

// MatchingConfig tunes the match finder.
type MatchingConfig struct {
	Limit int
}

// ReportsConfig governs admin report rendering.
type ReportsConfig struct {
	Enabled   bool
	Dir       string
	Format    string
	Retention time.Duration
	Workers   int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Session = SessionConfig{
		AdminEmail:     strings.ToLower(strings.TrimSpace(v.GetString("ADMIN_EMAIL"))),
		LoginDelay:     parseDuration(v.GetString("LOGIN_DELAY"), time.Second),
		DemoLoginEmail: strings.TrimSpace(v.GetString("DEMO_LOGIN_EMAIL")),
	}

	limit := v.GetInt("MATCH_LIMIT")
	if limit <= 0 {
		limit = 3
	}
	cfg.Matching = MatchingConfig{Limit: limit}

	format := strings.ToLower(strings.TrimSpace(v.GetString("REPORTS_FORMAT")))
	if format != "pdf" {
		format = "csv"
	}
	workers := v.GetInt("REPORTS_WORKERS")
	if workers <= 0 {
		workers = 2
	}
	cfg.Reports = ReportsConfig{
		Enabled:   v.GetBool("ENABLE_REPORTS"),
		Dir:       v.GetString("REPORTS_DIR"),
		Format:    format,
		Retention: parseDuration(v.GetString("REPORTS_RETENTION"), 0),
		Workers:   workers,
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ADMIN_EMAIL", "admin@skillswap.com")
	v.SetDefault("LOGIN_DELAY", "1s")
	v.SetDefault("DEMO_LOGIN_EMAIL", "sarah.chen@email.com")

	v.SetDefault("MATCH_LIMIT", 3)

	v.SetDefault("ENABLE_REPORTS", false)
	v.SetDefault("REPORTS_DIR", "./exports")
	v.SetDefault("REPORTS_FORMAT", "csv")
	v.SetDefault("REPORTS_RETENTION", "168h")
	v.SetDefault("REPORTS_WORKERS", 2)
}

// viper reports a missing explicit config file as a plain fs error rather than ConfigFileNotFoundError.
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
