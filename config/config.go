// config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// SMTPConfig holds the mail relay settings. All of Host, Port, User and Pass
// must be present for the relay to be usable.
type SMTPConfig struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Secure bool
	From   string
}

// Configured reports whether the relay can be dialled.
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.Port > 0 && s.User != "" && s.Pass != ""
}

// Sender returns the From address, falling back to no-reply@host.
func (s SMTPConfig) Sender() string {
	if s.From != "" {
		return s.From
	}
	return "no-reply@" + s.Host
}

// RedisConfig points at the optional session revocation store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AdminSeed is the account created on first boot when no admin exists.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// Config holds all configuration for the application.
type Config struct {
	Port                    string
	Env                     string
	MongoURI                string
	DBName                  string
	ClientURL               string
	JWTSecret               string
	SessionTTL              time.Duration
	CookieSecure            bool
	SMTP                    SMTPConfig
	Redis                   RedisConfig
	LogLevel                string
	LogFormat               string
	DashboardTimezone       string
	StrictStatusTransitions bool
	StaticDir               string
	Admin                   AdminSeed
	OTelExporter            string
}

// Load reads configuration from the environment, after loading .env if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "5000"),
		Env:               firstEnv("ENV", "NODE_ENV"),
		MongoURI:          firstEnv("MONGODB_URI", "MONGO_URI"),
		DBName:            getEnv("DB_NAME", "client_desk"),
		ClientURL:         os.Getenv("CLIENT_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		SessionTTL:        24 * time.Hour,
		CookieSecure:      os.Getenv("COOKIE_SECURE") == "true",
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
		DashboardTimezone: "Asia/Kolkata",
		StaticDir:         getEnv("STATIC_DIR", "dist"),
		OTelExporter:      getEnv("OTEL_EXPORTER", "none"),
		Admin: AdminSeed{
			Name:     getEnv("ADMIN_NAME", "Administrator"),
			Email:    strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	cfg.StrictStatusTransitions = os.Getenv("STRICT_STATUS_TRANSITIONS") == "true"

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}

	if tz := os.Getenv("DASHBOARD_TIMEZONE"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			cfg.DashboardTimezone = tz
		}
	}

	cfg.SMTP = SMTPConfig{
		Host:   os.Getenv("SMTP_HOST"),
		User:   os.Getenv("SMTP_USER"),
		Pass:   os.Getenv("SMTP_PASS"),
		Secure: os.Getenv("SMTP_SECURE") == "true",
		From:   firstEnv("SMTP_FROM", "EMAIL_FROM"),
	}
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil && p > 0 {
			cfg.SMTP.Port = p
		}
	}

	cfg.Redis = RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = db
		}
	}

	if cfg.MongoURI == "" && cfg.IsDevelopment() {
		cfg.MongoURI = "mongodb://localhost:27017"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.MongoURI == "" {
		errs = append(errs, "MONGODB_URI (or MONGO_URI) is required outside development")
	}

	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}

	if (c.Admin.Email == "") != (c.Admin.Password == "") {
		errs = append(errs, "ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// IsDevelopment reports whether the server runs with development fallbacks.
func (c *Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development" || c.Env == "dev"
}

// AllowedOrigins is the CORS origin list: CLIENT_URL (or any) in production,
// the Vite dev server otherwise.
func (c *Config) AllowedOrigins() []string {
	if c.IsProduction() {
		if c.ClientURL == "" {
			return []string{"*"}
		}
		origins := []string{}
		for _, o := range strings.Split(c.ClientURL, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return origins
	}
	return []string{"http://localhost:5173"}
}

// Location resolves DashboardTimezone, falling back to the host zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DashboardTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
