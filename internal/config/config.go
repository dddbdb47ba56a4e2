package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/passforge/passforge-go/internal/crypto"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port        string
	Env         string
	LogLevel    slog.Level
	DBDriver    string
	DatabaseDSN string
	JWTSecret   string
	RateLimit   float64
	RateBurst   int
	Bounds      crypto.Bounds
	Defaults    crypto.Request
}

func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DBDriver:    getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN: getEnv("DATABASE_DSN", "file:passforge.db?_pragma=busy_timeout(5000)"),
		JWTSecret:   getEnv("JWT_SECRET", devJWTSecret),
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	cfg.RateLimit, err = getEnvFloat("RATE_LIMIT_RPS", 5)
	collect(err)
	cfg.RateBurst, err = getEnvInt("RATE_LIMIT_BURST", 10)
	collect(err)
	cfg.Bounds.Min, err = getEnvInt("PASSWORD_MIN_LENGTH", crypto.MinLength)
	collect(err)
	cfg.Bounds.Max, err = getEnvInt("PASSWORD_MAX_LENGTH", crypto.MaxLength)
	collect(err)
	cfg.Defaults.Length, err = getEnvInt("PASSWORD_DEFAULT_LENGTH", crypto.DefaultLength)
	collect(err)
	cfg.Defaults.Categories, err = crypto.ParseCategorySet(strings.Split(getEnv("PASSWORD_DEFAULT_CATEGORIES", crypto.AllCategories.String()), ","))
	collect(err)
	collect(cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))))

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		collect(errors.New("JWT_SECRET must be set in production environment"))
	}
	if err := ValidateBounds(cfg.Bounds); err != nil {
		collect(err)
	} else {
		collect(ValidateDefaults(cfg.Bounds, cfg.Defaults))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateBounds rejects ranges that could never produce a password.
func ValidateBounds(b crypto.Bounds) error {
	if b.Min < 1 {
		return fmt.Errorf("minimum password length must be at least 1, got %d", b.Min)
	}
	if b.Max < b.Min {
		return fmt.Errorf("maximum password length %d is below minimum %d", b.Max, b.Min)
	}
	return nil
}

// ValidateDefaults rejects a default request the generator would refuse,
// such as an empty category list or a length outside b.
func ValidateDefaults(b crypto.Bounds, req crypto.Request) error {
	if err := crypto.NewGenerator(b).Validate(req); err != nil {
		return fmt.Errorf("default password request: %w", err)
	}
	return nil
}

// Logger builds the process logger: JSON in production, text elsewhere.
func (c Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.Env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
