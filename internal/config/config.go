package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDialect  string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	GinMode    string
	Port       string
}

func Load() *Config {
	// Optional .env for local development
	_ = godotenv.Load()

	return &Config{
		DBDialect:  getEnv("DB_DIALECT", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "lessonuser"),
		DBPassword: getEnv("DB_PASSWORD", "lessonpassword"),
		DBName:     getEnv("DB_NAME", "lesson_points"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		Port:       getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
