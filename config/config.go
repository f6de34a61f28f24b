package config

import (
	"fmt"
	"os"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type FTPConfig struct {
	Addr     string
	Username string
	Password string
	BaseURL  string
}

type Config struct {
	Port string
	DB   DBConfig
	FTP  FTPConfig
}

// Load reads the full configuration from the environment once at startup.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "editorial_db"),
		},
		FTP: FTPConfig{
			Addr:     getEnv("FTP_ADDR", "localhost:21"),
			Username: getEnv("FTP_USERNAME", "anonymous"),
			Password: getEnv("FTP_PASSWORD", ""),
			BaseURL:  getEnv("FTP_BASE_URL", "http://localhost/"),
		},
	}
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
