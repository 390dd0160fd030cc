package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Report   ReportConfig
	Mirror   MirrorConfig
	Admin    AdminConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// Timezone is the clinic's local time; working days and the report
	// calendar are computed in it.
	Timezone string
}

// JWTConfig holds admin session token configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// ReportConfig holds the daily attendance report settings
type ReportConfig struct {
	Recipient string
}

// MirrorConfig points at the best-effort cloud replica; empty BaseURL
// disables mirroring.
type MirrorConfig struct {
	BaseURL string
	APIKey  string
}

type AdminAccount struct {
	Username string
	Password string
}

// AdminConfig lists the admin accounts seeded at boot.
type AdminConfig struct {
	Accounts []AdminAccount
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "clinika-kiosk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "Asia/Jakarta"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "Clinika Kiosk"),
	}

	// Report configuration
	config.Report = ReportConfig{
		Recipient: getEnv("REPORT_RECIPIENT", ""),
	}

	// Mirror configuration
	config.Mirror = MirrorConfig{
		BaseURL: getEnv("MIRROR_BASE_URL", ""),
		APIKey:  getEnv("MIRROR_API_KEY", ""),
	}

	// Admin accounts seeded at boot
	config.Admin = AdminConfig{
		Accounts: []AdminAccount{
			{
				Username: getEnv("ADMIN_USERNAME", "admin"),
				Password: getEnv("ADMIN_PASSWORD", ""),
			},
			{
				Username: getEnv("ADMIN2_USERNAME", "supervisor"),
				Password: getEnv("ADMIN2_PASSWORD", ""),
			},
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Report.Recipient == "" {
		return fmt.Errorf("REPORT_RECIPIENT is required")
	}
	for _, account := range c.Admin.Accounts {
		if account.Password == "" {
			return fmt.Errorf("admin account %q has no password configured", account.Username)
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
