package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	APIURL         string // Base URL for the remote content API
	UseMock        bool   // Serve the in-memory catalog instead of the remote API
	PublicPreview  bool   // Allow anonymous users to browse the full catalog
	RequestTimeout int    // Per-request timeout for gateway calls, in seconds

	CookieSecure bool

	DBDriver   string // sqlite or postgres
	DBName     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string

	AuditRetentionDays int
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
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		APIURL:         getEnv("API_URL", "http://localhost:1337/api"),
		UseMock:        getEnvBool("USE_MOCK", false),
		PublicPreview:  getEnvBool("PUBLIC_PREVIEW", false),
		RequestTimeout: getEnvInt("REQUEST_TIMEOUT_SEC", 10),

		CookieSecure: getEnvBool("COOKIE_SECURE", true),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "academy.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),

		AuditRetentionDays: getEnvInt("AUDIT_RETENTION_DAYS", 30),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if !AppConfig.UseMock && AppConfig.APIURL == "http://localhost:1337/api" {
		log.Println("Warning: Using default API_URL. Update it in your environment.")
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

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
