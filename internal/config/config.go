package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string
	Port int
}

func (s ServerConfig) Addr() string {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggerConfig selects the zap preset and an optional rotated log file.
type LoggerConfig struct {
	Mode     string // development | production
	Filename string
}

// AuthConfig holds the session token settings.
type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// PaymentConfig toggles the optional payment methods.
type PaymentConfig struct {
	InStore bool
}

// SMTPConfig enables the order confirmation email when Host is set.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s SMTPConfig) Enabled() bool { return s.Host != "" }

// ShippingConfig holds defaults for shipments created after purchase.
type ShippingConfig struct {
	Carrier string
}

// Config is the application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Payment  PaymentConfig
	SMTP     SMTPConfig
	Shipping ShippingConfig
	// SeedFile replaces the embedded demo dataset when set.
	SeedFile string
}

// DefaultConfig returns a configuration that runs the demo locally.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Logger: LoggerConfig{Mode: "development"},
		Auth: AuthConfig{
			Secret:   "awe-demo-secret",
			TokenTTL: 24 * time.Hour,
		},
		SMTP:     SMTPConfig{Port: 587},
		Shipping: ShippingConfig{Carrier: "Australia Post"},
	}
}

// Load reads an optional .env file and overlays environment variables on DefaultConfig.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function so tests need not touch the process env.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()
	var err error

	if v, ok := lookup("APP_HOST"); ok {
		cfg.Server.Host = v
	}
	if v, ok := lookup("APP_PORT"); ok {
		if cfg.Server.Port, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid APP_PORT %q: %w", v, err)
		}
	}
	if v, ok := lookup("LOG_MODE"); ok {
		cfg.Logger.Mode = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		cfg.Logger.Filename = v
	}
	if v, ok := lookup("JWT_SECRET"); ok {
		cfg.Auth.Secret = v
	}
	if v, ok := lookup("TOKEN_TTL"); ok {
		if cfg.Auth.TokenTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
	}
	if v, ok := lookup("PAYMENT_IN_STORE"); ok {
		if cfg.Payment.InStore, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid PAYMENT_IN_STORE %q: %w", v, err)
		}
	}
	if v, ok := lookup("SMTP_HOST"); ok {
		cfg.SMTP.Host = v
	}
	if v, ok := lookup("SMTP_PORT"); ok {
		if cfg.SMTP.Port, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
	}
	if v, ok := lookup("SMTP_USER"); ok {
		cfg.SMTP.Username = v
	}
	if v, ok := lookup("SMTP_PASS"); ok {
		cfg.SMTP.Password = v
	}
	if v, ok := lookup("SMTP_FROM"); ok {
		cfg.SMTP.From = v
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	if v, ok := lookup("SEED_FILE"); ok {
		cfg.SeedFile = v
	}
	if v, ok := lookup("DEFAULT_CARRIER"); ok && v != "" {
		cfg.Shipping.Carrier = v
	}
	return cfg, nil
}
