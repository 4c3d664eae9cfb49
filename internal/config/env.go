package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	JWTSecret string
}

// LoadEnv reads configuration from the environment, with a .env file as a
// convenience for local runs. Every field has a usable default.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "picus_rc"),
		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-me"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
