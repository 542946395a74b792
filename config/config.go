package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jinzhu/now"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string
	JWTKey string

	AuthServiceURL string

	EmailSender string
	Password    string // SMTP Password

	SeedTeacherCount int
	SeedZombieCount  int
	SeedBaseDate     time.Time
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "copyadmin.db"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		AuthServiceURL: getEnv("AUTH_SERVICE_URL", "http://localhost:4000"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),

		SeedTeacherCount: getEnvInt("SEED_TEACHER_COUNT", 12),
		SeedZombieCount:  getEnvInt("SEED_ZOMBIE_COUNT", 8),
		SeedBaseDate:     getEnvDate("SEED_BASE_DATE", time.Date(2025, 1, 6, 9, 15, 0, 0, time.UTC)),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvDate parses an environment variable with flexible date formats
func getEnvDate(key string, defaultValue time.Time) time.Time {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := now.Parse(value)
	if err != nil {
		log.Printf("Error parsing environment variable %s as date: %v", key, err)
		return defaultValue
	}
	return parsed
}
