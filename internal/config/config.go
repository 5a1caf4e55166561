// Package config loads server settings from config.yaml, .env and BUDGET_* env vars.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "BUDGET"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Whitelist backends
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// Config holds all server settings
type Config struct {
	App       AppConfig
	Log       LogConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Whitelist WhitelistConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Webhook   WebhookConfig
	HTTP      HTTPConfig
}

type AppConfig struct {
	Env  string
	Port string
}

type LogConfig struct {
	Level  string
	Format string // text | json, пусто - по окружению
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret          string
	AccessTTLHours  int
	RefreshTTLHours int
}

// AccessTTL время жизни access token
func (c JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLHours) * time.Hour
}

// RefreshTTL время жизни refresh token и записи whitelist
func (c JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLHours) * time.Hour
}

type WhitelistConfig struct {
	Backend  string
	BoltPath string
	PageSize int
}

type SessionConfig struct {
	CleanupInterval time.Duration
}

type RateLimitConfig struct {
	Requests      int
	Window        time.Duration
	LoginRequests int
	LoginWindow   time.Duration
}

type WebhookConfig struct {
	Timeout time.Duration
	// EncryptionKey пароль для шифрования секретов webhook, по умолчанию jwt.secret
	EncryptionKey string
}

type HTTPConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxHeaderBytes  int
}

// IsDevelopment reports whether causes and origins may leak into responses
func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

// Addr адрес для http.Server
func (c *Config) Addr() string {
	return ":" + c.App.Port
}

// Load reads configuration. A missing config file or .env is not an error.
func Load(configPaths ...string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{".", "./config"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		JWT: JWTConfig{
			Secret:          v.GetString("jwt.secret"),
			AccessTTLHours:  v.GetInt("jwt.access_ttl_hours"),
			RefreshTTLHours: v.GetInt("jwt.refresh_ttl_hours"),
		},
		Whitelist: WhitelistConfig{
			Backend:  v.GetString("whitelist.backend"),
			BoltPath: v.GetString("whitelist.bolt_path"),
			PageSize: v.GetInt("whitelist.page_size"),
		},
		Session: SessionConfig{
			CleanupInterval: v.GetDuration("session.cleanup_interval"),
		},
		RateLimit: RateLimitConfig{
			Requests:      v.GetInt("ratelimit.requests"),
			Window:        v.GetDuration("ratelimit.window"),
			LoginRequests: v.GetInt("ratelimit.login_requests"),
			LoginWindow:   v.GetDuration("ratelimit.login_window"),
		},
		Webhook: WebhookConfig{
			Timeout:       v.GetDuration("webhook.timeout"),
			EncryptionKey: v.GetString("webhook.encryption_key"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:     v.GetDuration("http.read_timeout"),
			WriteTimeout:    v.GetDuration("http.write_timeout"),
			IdleTimeout:     v.GetDuration("http.idle_timeout"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
			MaxHeaderBytes:  v.GetInt("http.max_header_bytes"),
		},
	}

	if cfg.Webhook.EncryptionKey == "" {
		cfg.Webhook.EncryptionKey = cfg.JWT.Secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", EnvDevelopment)
	v.SetDefault("app.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "")
	v.SetDefault("database.path", "budgetkeeper.db")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_ttl_hours", 1)
	v.SetDefault("jwt.refresh_ttl_hours", 24)
	v.SetDefault("whitelist.backend", BackendSQLite)
	v.SetDefault("whitelist.bolt_path", "whitelist.bolt")
	v.SetDefault("whitelist.page_size", 100)
	v.SetDefault("session.cleanup_interval", time.Minute)
	// 100 запросов за 10 минут с одного IP
	v.SetDefault("ratelimit.requests", 100)
	v.SetDefault("ratelimit.window", 10*time.Minute)
	v.SetDefault("ratelimit.login_requests", 5)
	v.SetDefault("ratelimit.login_window", time.Minute)
	v.SetDefault("webhook.timeout", 5*time.Second)
	v.SetDefault("webhook.encryption_key", "")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 30*time.Second)
	v.SetDefault("http.max_header_bytes", 1<<20)
}

// Validate checks values that have no safe fallback
func (c *Config) Validate() error {
	if c.JWT.Secret == "" && !c.IsDevelopment() {
		return errors.New("jwt.secret is required outside development")
	}
	if c.JWT.AccessTTLHours <= 0 {
		return fmt.Errorf("jwt.access_ttl_hours must be positive, got %d", c.JWT.AccessTTLHours)
	}
	if c.JWT.RefreshTTLHours <= 0 {
		return fmt.Errorf("jwt.refresh_ttl_hours must be positive, got %d", c.JWT.RefreshTTLHours)
	}
	switch c.Whitelist.Backend {
	case BackendSQLite, BackendBolt:
	default:
		return fmt.Errorf("unknown whitelist.backend %q", c.Whitelist.Backend)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return errors.New("ratelimit.requests and ratelimit.window must be positive")
	}
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	return nil
}

// NewLogger builds the slog logger. Without log.format it is text in
// development and JSON otherwise.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.Log.Level)}

	format := c.Log.Format
	if format == "" {
		format = "json"
		if c.IsDevelopment() {
			format = "text"
		}
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
