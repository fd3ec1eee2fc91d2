package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	JWTSecret    string
	JWTExpiresH  int
	AllowOrigins string
	LogLevel     string
	OverdueCron  string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8080"),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPassword:   getenv("DB_PASSWORD", ""),
		DBName:       getenv("DB_NAME", "finance_control"),
		DBSSLMode:    getenv("DB_SSLMODE", "disable"),
		JWTSecret:    getenv("JWT_SECRET", ""),
		JWTExpiresH:  atoi("JWT_EXPIRES_HOURS", 24),
		AllowOrigins: getenv("ALLOW_ORIGINS", "*"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		OverdueCron:  getenv("OVERDUE_CRON", "@daily"),
	}
}
