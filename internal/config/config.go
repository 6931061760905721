package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Company  CompanyConfig
	Mail     MailConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for the admin endpoints
}

// CompanyConfig identifies the seller on every outbound document
// (WhatsApp message, PDF header, notification mail).
type CompanyConfig struct {
	Name    string
	Slogan  string
	Phone   string // international format, digits only, used for the wa.me link
	Email   string
	Website string
}

// MailConfig configures the optional seller notification mail.
// Notifications are disabled when no SendGrid key is set.
type MailConfig struct {
	SendGridAPIKey string
	FromAddress    string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("API_KEYS", []string{"apitest"}),
		},
		Company: CompanyConfig{
			Name:    getEnv("COMPANY_NAME", "YOLIMAR"),
			Slogan:  getEnv("COMPANY_SLOGAN", "Poleras Personalizadas de Calidad"),
			Phone:   getEnv("COMPANY_PHONE", "59176319999"),
			Email:   getEnv("COMPANY_EMAIL", "ventas@yolimar.com"),
			Website: getEnv("COMPANY_WEBSITE", "https://yolimartextil.netlify.app/"),
		},
		Mail: MailConfig{
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromAddress:    getEnv("MAIL_FROM_ADDRESS", "no-reply@yolimar.com"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	if c.Company.Phone == "" {
		return fmt.Errorf("COMPANY_PHONE is required for the WhatsApp order link")
	}
	for _, r := range c.Company.Phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("COMPANY_PHONE must contain digits only, got %q", c.Company.Phone)
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
