package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         string
	DatabasePath string
	UploadDir    string
	SecretKey    string
	Environment  string
	Hostname     string
	LogLevel     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	secretKey := getEnv("SECRET_KEY", "")
	if secretKey == "" {
		// Tokens issued by this process are only valid for its lifetime.
		secretKey = randomSecret()
	}

	return &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "database.db"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		SecretKey:    secretKey,
		Environment:  getEnv("ENVIRONMENT", "development"),
		Hostname:     getEnv("HOSTNAME", "unknown"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("failed to generate secret key: %v", err)
	}
	return hex.EncodeToString(buf)
}

func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
